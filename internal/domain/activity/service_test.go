package activity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/medcare/medcare/internal/domain/vitals"
	"github.com/medcare/medcare/internal/platform/validation"
)

type mockRepo struct {
	items []*Activity
	err   error
}

func (m *mockRepo) Create(_ context.Context, a *Activity) error {
	if m.err != nil {
		return m.err
	}
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	m.items = append(m.items, a)
	return nil
}

func (m *mockRepo) ListByUser(_ context.Context, userID string) ([]*Activity, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]*Activity, 0)
	for _, a := range m.items {
		if a.UserID == userID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID, userID string) error {
	for i, a := range m.items {
		if a.ID == id && (userID == "" || a.UserID == userID) {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type mockVitals struct {
	logs []*vitals.VitalLog
	err  error
}

func (m *mockVitals) Summarize(_ context.Context, _ string) (vitals.Summary, error) {
	if m.err != nil {
		return vitals.Summary{}, m.err
	}
	return vitals.Summarize(m.logs), nil
}

type mockGuardian struct {
	verified bool
	err      error
	calls    int
}

func (m *mockGuardian) NotifyActivityCompleted(_ context.Context, _, _, _ string) (bool, error) {
	m.calls++
	if m.err != nil {
		return false, m.err
	}
	return m.verified, nil
}

func TestService_Overview(t *testing.T) {
	repo := &mockRepo{}
	v := &mockVitals{logs: []*vitals.VitalLog{{Category: vitals.CategoryWeight, Value: "90", RecordedAt: time.Now()}}}
	svc := NewService(repo, v, &mockGuardian{})
	svc.AddFromText(context.Background(), "u1", "Evening walk")

	ov, err := svc.Overview(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ov.DB) != 1 {
		t.Errorf("expected 1 stored activity, got %d", len(ov.DB))
	}
	if len(ov.System) != 3 {
		t.Errorf("expected weight and general suggestions, got %+v", ov.System)
	}
}

func TestService_Overview_VitalsFailure(t *testing.T) {
	svc := NewService(&mockRepo{}, &mockVitals{err: errors.New("timeout")}, &mockGuardian{})
	if _, err := svc.Overview(context.Background(), "u1"); err == nil {
		t.Fatal("expected error")
	}
}

func TestService_AddFromText(t *testing.T) {
	svc := NewService(&mockRepo{}, &mockVitals{}, &mockGuardian{})
	a, err := svc.AddFromText(context.Background(), "u1", "  Practice yoga daily ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Title != "Practice yoga daily" || a.Category != CategoryExercise || a.Source != SourceDoctor {
		t.Errorf("unexpected activity %+v", a)
	}
	if a.IsCompleted {
		t.Error("new activity must be pending")
	}
}

func TestService_AddFromText_Empty(t *testing.T) {
	svc := NewService(&mockRepo{}, &mockVitals{}, &mockGuardian{})
	if _, err := svc.AddFromText(context.Background(), "u1", "   "); !validation.IsInvalid(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestService_Complete_NotifiesGuardian(t *testing.T) {
	repo := &mockRepo{}
	g := &mockGuardian{verified: true}
	svc := NewService(repo, &mockVitals{}, g)

	a := &Activity{UserID: "u1", Title: "30 min Brisk Walk"}
	msg, err := svc.Complete(context.Background(), a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != MsgCompletedNotified {
		t.Errorf("unexpected message %q", msg)
	}
	if !a.IsCompleted || a.Category != CategoryGeneral || a.Source != SourceUser {
		t.Errorf("unexpected activity %+v", a)
	}
	if len(repo.items) != 1 || g.calls != 1 {
		t.Errorf("expected stored and notified, got %d items, %d calls", len(repo.items), g.calls)
	}
}

func TestService_Complete_NoGuardian(t *testing.T) {
	svc := NewService(&mockRepo{}, &mockVitals{}, &mockGuardian{})
	msg, err := svc.Complete(context.Background(), &Activity{UserID: "u1", Title: "Stretch"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != MsgCompletedAlone {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestService_Complete_StoreFailureSkipsNotify(t *testing.T) {
	g := &mockGuardian{verified: true}
	svc := NewService(&mockRepo{err: errors.New("db down")}, &mockVitals{}, g)
	if _, err := svc.Complete(context.Background(), &Activity{UserID: "u1", Title: "Stretch"}); err == nil {
		t.Fatal("expected error")
	}
	if g.calls != 0 {
		t.Error("guardian must not be notified when the activity was not stored")
	}
}

func TestService_Complete_Validation(t *testing.T) {
	svc := NewService(&mockRepo{}, &mockVitals{}, &mockGuardian{})
	if _, err := svc.Complete(context.Background(), &Activity{UserID: "u1"}); !validation.IsInvalid(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}
