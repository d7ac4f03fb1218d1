package reminder

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medcare/medcare/internal/platform/validation"
)

// datetimeLayouts are tried in order. The second and third match what
// browser datetime-local inputs send.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// ParseDatetime parses a reminder time. Values without a zone are UTC.
func ParseDatetime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, validation.Errorf("datetime %q is not a valid date and time", s)
}

var validFrequencies = map[string]bool{
	FrequencyOnce:   true,
	FrequencyDaily:  true,
	FrequencyWeekly: true,
	FrequencyCustom: true,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, r *Reminder) error {
	r.Title = strings.TrimSpace(r.Title)
	if r.UserID == "" {
		return validation.Errorf("userId is required")
	}
	if r.Title == "" {
		return validation.Errorf("title is required")
	}
	if r.Datetime.IsZero() {
		return validation.Errorf("datetime is required")
	}
	if r.Frequency == "" {
		r.Frequency = FrequencyOnce
	}
	if !validFrequencies[r.Frequency] {
		return validation.Errorf("invalid frequency: %s", r.Frequency)
	}

	days, err := normalizeDays(r.SelectedDays)
	if err != nil {
		return err
	}
	switch r.Frequency {
	case FrequencyCustom:
		if len(days) == 0 {
			return validation.Errorf("selectedDays must contain at least one day for custom reminders")
		}
	case FrequencyOnce, FrequencyDaily:
		days = []string{}
	}
	r.SelectedDays = days
	return s.repo.Create(ctx, r)
}

// normalizeDays removes duplicates and returns the tags in Mon..Sun order.
func normalizeDays(days []string) ([]string, error) {
	seen := make(map[string]bool, len(days))
	for _, d := range days {
		if !validation.IsWeekday(d) {
			return nil, validation.Errorf("invalid weekday: %s", d)
		}
		seen[d] = true
	}
	out := make([]string, 0, len(seen))
	for _, d := range validation.Weekdays {
		if seen[d] {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]*Reminder, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}
