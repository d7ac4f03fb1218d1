package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/medcare/medcare/internal/platform/validation"
)

type mockRepo struct {
	items []*Reminder
}

func (m *mockRepo) Create(_ context.Context, r *Reminder) error {
	r.ID = uuid.New()
	r.CreatedAt = time.Now()
	m.items = append(m.items, r)
	return nil
}

func (m *mockRepo) ListByUser(_ context.Context, userID string) ([]*Reminder, error) {
	result := make([]*Reminder, 0)
	for _, r := range m.items {
		if r.UserID == userID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID, userID string) error {
	for i, r := range m.items {
		if r.ID == id && (userID == "" || r.UserID == userID) {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

var firstRun = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

func TestService_Create_DefaultsToOnce(t *testing.T) {
	svc := NewService(&mockRepo{})
	r := &Reminder{UserID: "u1", Title: "Take BP pill", Datetime: firstRun, SelectedDays: []string{"Mon"}}
	if err := svc.Create(context.Background(), r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Frequency != FrequencyOnce {
		t.Errorf("expected frequency once, got %s", r.Frequency)
	}
	if len(r.SelectedDays) != 0 {
		t.Errorf("expected days to be cleared for a one-off reminder, got %v", r.SelectedDays)
	}
}

func TestService_Create_CustomRequiresDays(t *testing.T) {
	svc := NewService(&mockRepo{})
	err := svc.Create(context.Background(), &Reminder{UserID: "u1", Title: "Walk", Datetime: firstRun, Frequency: FrequencyCustom})
	if !validation.IsInvalid(err) {
		t.Fatalf("expected input error, got %v", err)
	}
}

func TestService_Create_CustomNormalizesDays(t *testing.T) {
	svc := NewService(&mockRepo{})
	r := &Reminder{UserID: "u1", Title: "Walk", Datetime: firstRun, Frequency: FrequencyCustom,
		SelectedDays: []string{"Fri", "Mon", "Fri", "Wed"}}
	if err := svc.Create(context.Background(), r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Mon", "Wed", "Fri"}
	if len(r.SelectedDays) != len(want) {
		t.Fatalf("expected %v, got %v", want, r.SelectedDays)
	}
	for i := range want {
		if r.SelectedDays[i] != want[i] {
			t.Errorf("day[%d] = %s, want %s", i, r.SelectedDays[i], want[i])
		}
	}
}

func TestService_Create_InvalidWeekday(t *testing.T) {
	svc := NewService(&mockRepo{})
	err := svc.Create(context.Background(), &Reminder{UserID: "u1", Title: "Walk", Datetime: firstRun,
		Frequency: FrequencyWeekly, SelectedDays: []string{"Monday"}})
	if err == nil {
		t.Fatal("expected error for invalid weekday tag")
	}
}

func TestService_Create_InvalidFrequency(t *testing.T) {
	svc := NewService(&mockRepo{})
	err := svc.Create(context.Background(), &Reminder{UserID: "u1", Title: "Walk", Datetime: firstRun, Frequency: "hourly"})
	if err == nil {
		t.Fatal("expected error for invalid frequency")
	}
}

func TestService_Create_RequiresDatetime(t *testing.T) {
	svc := NewService(&mockRepo{})
	if err := svc.Create(context.Background(), &Reminder{UserID: "u1", Title: "Walk"}); err == nil {
		t.Fatal("expected error for missing datetime")
	}
}

func TestParseDatetime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2025-06-01T08:00:00Z", firstRun},
		{"2025-06-01T13:30:00+05:30", firstRun},
		{"2025-06-01T08:00", firstRun},
		{"2025-06-01 08:00:00", firstRun},
	}
	for _, tt := range tests {
		got, err := ParseDatetime(tt.in)
		if err != nil {
			t.Errorf("ParseDatetime(%q) error: %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseDatetime(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDatetime("tomorrow"); err == nil {
		t.Error("expected error for unparseable datetime")
	}
}
