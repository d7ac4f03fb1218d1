package timeline

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/medcare/medcare/internal/domain/appointment"
	"github.com/medcare/medcare/internal/domain/history"
	"github.com/medcare/medcare/internal/domain/medicine"
	"github.com/medcare/medcare/internal/domain/report"
)

type AppointmentLister interface {
	ListByUser(ctx context.Context, userID string) ([]*appointment.Appointment, error)
}

type HistoryLister interface {
	ListByUser(ctx context.Context, userID string) ([]*history.Record, error)
}

type MedicineLister interface {
	ListByUser(ctx context.Context, userID string) ([]*medicine.Medicine, error)
}

type ReportLister interface {
	ListByUser(ctx context.Context, userID string) ([]*report.Report, error)
}

// Service builds a user's timeline from the four record stores.
type Service struct {
	appointments AppointmentLister
	history      HistoryLister
	medicines    MedicineLister
	reports      ReportLister
}

func NewService(a AppointmentLister, h HistoryLister, m MedicineLister, r ReportLister) *Service {
	return &Service{appointments: a, history: h, medicines: m, reports: r}
}

// Build fetches every source concurrently and returns the merged events,
// newest first. If any source fails the whole build fails.
func (s *Service) Build(ctx context.Context, userID string) ([]Event, error) {
	var (
		appts []*appointment.Appointment
		hist  []*history.Record
		meds  []*medicine.Medicine
		reps  []*report.Report
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if appts, err = s.appointments.ListByUser(gctx, userID); err != nil {
			return fmt.Errorf("list appointments: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if hist, err = s.history.ListByUser(gctx, userID); err != nil {
			return fmt.Errorf("list history: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if meds, err = s.medicines.ListByUser(gctx, userID); err != nil {
			return fmt.Errorf("list medicines: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if reps, err = s.reports.ListByUser(gctx, userID); err != nil {
			return fmt.Errorf("list reports: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Merge(appts, hist, meds, reps), nil
}

// Merge normalizes the records and orders them newest first. Events with the
// same date keep the order appointments, history, medicines, reports.
func Merge(appts []*appointment.Appointment, hist []*history.Record, meds []*medicine.Medicine, reps []*report.Report) []Event {
	events := make([]Event, 0, len(appts)+len(hist)+len(meds)+len(reps))
	for _, a := range appts {
		events = append(events, fromAppointment(a))
	}
	for _, h := range hist {
		events = append(events, fromHistory(h))
	}
	for _, m := range meds {
		events = append(events, fromMedicine(m))
	}
	for _, r := range reps {
		events = append(events, fromReport(r))
	}

	dates := make([]time.Time, len(events))
	for i := range events {
		dates[i] = parseDate(events[i].Date)
	}
	idx := make([]int, len(events))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return dates[idx[i]].After(dates[idx[j]])
	})

	sorted := make([]Event, len(events))
	for i, k := range idx {
		sorted[i] = events[k]
	}
	return sorted
}
