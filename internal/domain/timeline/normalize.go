package timeline

import (
	"fmt"
	"time"

	"github.com/medcare/medcare/internal/domain/appointment"
	"github.com/medcare/medcare/internal/domain/history"
	"github.com/medcare/medcare/internal/domain/medicine"
	"github.com/medcare/medcare/internal/domain/report"
)

// MissingDate is used for records without a creation time.
const MissingDate = "2025-01-01"

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// dayOf truncates a creation time to its UTC calendar day.
func dayOf(t time.Time) string {
	if t.IsZero() {
		return MissingDate
	}
	return t.UTC().Format("2006-01-02")
}

func fromAppointment(a *appointment.Appointment) Event {
	return Event{
		ID:          a.ID.String(),
		Type:        TypeAppointment,
		Title:       fmt.Sprintf("Visited %s (%s)", a.DoctorName, a.Specialty),
		Description: "Routine checkup at " + orDefault(a.Location, "Clinic"),
		Date:        a.Date,
		Icon:        IconCalendar,
	}
}

func fromHistory(r *history.Record) Event {
	return Event{
		ID:          r.ID.String(),
		Type:        TypeHistory,
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		Icon:        IconHistory,
	}
}

func fromMedicine(m *medicine.Medicine) Event {
	return Event{
		ID:          m.ID.String(),
		Type:        TypeMedicine,
		Title:       "Started new medicine: " + m.Name,
		Description: orDefault(m.Dosage, "Prescribed dosage") + " - " + orDefault(m.Frequency, "Daily"),
		Date:        dayOf(m.CreatedAt),
		Icon:        IconPill,
	}
}

func fromReport(r *report.Report) Event {
	return Event{
		ID:          r.ID.String(),
		Type:        TypeReport,
		Title:       "Uploaded Report: " + orDefault(r.Title, "Medical Document"),
		Description: "Lab results/medical file uploaded.",
		Date:        dayOf(r.CreatedAt),
		Icon:        IconFile,
	}
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// parseDate returns the zero time for dates in no known layout, which sorts
// them after every dated event.
func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
