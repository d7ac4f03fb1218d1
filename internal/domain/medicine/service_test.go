package medicine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	items []*Medicine
}

func (m *mockRepo) Create(_ context.Context, med *Medicine) error {
	med.ID = uuid.New()
	med.CreatedAt = time.Now()
	m.items = append(m.items, med)
	return nil
}

func (m *mockRepo) ListByUser(_ context.Context, userID string) ([]*Medicine, error) {
	result := make([]*Medicine, 0)
	for _, med := range m.items {
		if med.UserID == userID {
			result = append(result, med)
		}
	}
	return result, nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID, userID string) error {
	for i, med := range m.items {
		if med.ID == id && (userID == "" || med.UserID == userID) {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func newTestService() *Service {
	return NewService(&mockRepo{})
}

func TestService_Create_DefaultFrequency(t *testing.T) {
	svc := newTestService()
	m := &Medicine{UserID: "u1", Name: "Paracetamol", Dosage: "500mg", Time: "08:00"}
	if err := svc.Create(context.Background(), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Frequency != "Daily" {
		t.Errorf("expected frequency Daily, got %s", m.Frequency)
	}
	if m.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestService_Create_Required(t *testing.T) {
	svc := newTestService()
	tests := []struct {
		name string
		med  Medicine
	}{
		{"name", Medicine{UserID: "u1", Dosage: "1", Time: "08:00"}},
		{"blank name", Medicine{UserID: "u1", Name: "  ", Dosage: "1", Time: "08:00"}},
		{"dosage", Medicine{UserID: "u1", Name: "X", Time: "08:00"}},
		{"time", Medicine{UserID: "u1", Name: "X", Dosage: "1"}},
		{"user", Medicine{Name: "X", Dosage: "1", Time: "08:00"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			med := tt.med
			if err := svc.Create(context.Background(), &med); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestService_ListAndDelete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	m := &Medicine{UserID: "u1", Name: "Metformin", Dosage: "500mg", Time: "20:00", Frequency: "Twice daily"}
	svc.Create(ctx, m)
	svc.Create(ctx, &Medicine{UserID: "u2", Name: "Other", Dosage: "1", Time: "08:00"})

	items, err := svc.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Frequency != "Twice daily" {
		t.Fatalf("unexpected items: %+v", items)
	}

	if err := svc.Delete(ctx, m.ID, "u2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign delete, got %v", err)
	}
	if err := svc.Delete(ctx, m.ID, "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, _ = svc.ListByUser(ctx, "u1")
	if len(items) != 0 {
		t.Errorf("expected no medicines after delete, got %d", len(items))
	}
}
