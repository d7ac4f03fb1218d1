package profile

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/medcare/medcare/internal/platform/notification"
	"github.com/medcare/medcare/internal/platform/validation"
)

type mockRepo struct {
	items map[string]*Profile
}

func newMockRepo(profiles ...*Profile) *mockRepo {
	m := &mockRepo{items: make(map[string]*Profile)}
	for _, p := range profiles {
		m.items[p.ID] = p
	}
	return m
}

func (m *mockRepo) Get(_ context.Context, id string) (*Profile, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockRepo) Upsert(_ context.Context, p *Profile) error {
	p.UpdatedAt = time.Now()
	cp := *p
	m.items[p.ID] = &cp
	return nil
}

func (m *mockRepo) VerifyGuardianToken(_ context.Context, token string) (*Profile, error) {
	for _, p := range m.items {
		if p.GuardianToken != "" && p.GuardianToken == token {
			p.GuardianVerified = true
			p.GuardianToken = ""
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func newTestService(repo *mockRepo) (*Service, *notification.MockSender) {
	sender := &notification.MockSender{}
	notifier := notification.NewNotifier(sender, nil, "no-reply@medcare.test")
	svc := NewService(repo, notifier, "http://app.test/", zerolog.Nop())
	svc.newToken = func() string { return "tok-1" }
	return svc, sender
}

func TestProfile_AgeYears(t *testing.T) {
	tests := map[string]int{"30": 30, " 65 ": 65, "": 0, "abc": 0, "12.5": 0}
	for in, want := range tests {
		p := &Profile{Age: in}
		if got := p.AgeYears(); got != want {
			t.Errorf("AgeYears(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestProfile_NeedsGuardian(t *testing.T) {
	tests := map[string]bool{"17": true, "18": false, "60": false, "61": true, "": true}
	for in, want := range tests {
		p := &Profile{Age: in}
		if got := p.NeedsGuardian(); got != want {
			t.Errorf("NeedsGuardian(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestService_Update_CreatesProfile(t *testing.T) {
	repo := newMockRepo()
	svc, sender := newTestService(repo)

	p, err := svc.Update(context.Background(), &Profile{ID: "u1", FirstName: "Asha", Email: "asha@example.com", Age: "30"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.FirstName != "Asha" || repo.items["u1"] == nil {
		t.Errorf("profile not stored: %+v", p)
	}
	if len(sender.Sent()) != 0 {
		t.Error("no email expected without a guardian")
	}
}

func TestService_Update_NewGuardianSendsLink(t *testing.T) {
	repo := newMockRepo(&Profile{ID: "u1", FirstName: "Asha", Email: "asha@example.com"})
	svc, sender := newTestService(repo)

	p, err := svc.Update(context.Background(), &Profile{ID: "u1", FirstName: "Asha", Email: "asha@example.com", GuardianEmail: "ravi@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.GuardianVerified || p.GuardianToken != "tok-1" {
		t.Errorf("expected pending guardian with token, got %+v", p)
	}

	sent := sender.Sent()
	if len(sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(sent))
	}
	if sent[0].To != "ravi@example.com" {
		t.Errorf("unexpected recipient %s", sent[0].To)
	}
	if !strings.Contains(sent[0].Body, "http://app.test/verify-guardian/tok-1") {
		t.Errorf("expected verification link in body: %s", sent[0].Body)
	}
}

func TestService_Update_SameGuardianKeepsVerification(t *testing.T) {
	repo := newMockRepo(&Profile{ID: "u1", Email: "asha@example.com", GuardianEmail: "ravi@example.com", GuardianVerified: true})
	svc, sender := newTestService(repo)

	p, err := svc.Update(context.Background(), &Profile{ID: "u1", FirstName: "Asha", Email: "asha@example.com", GuardianEmail: "Ravi@Example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.GuardianVerified {
		t.Error("expected guardian to stay verified")
	}
	if len(sender.Sent()) != 0 {
		t.Error("no email expected when the guardian is unchanged")
	}
}

func TestService_Update_ClearGuardian(t *testing.T) {
	repo := newMockRepo(&Profile{ID: "u1", GuardianEmail: "ravi@example.com", GuardianVerified: true})
	svc, _ := newTestService(repo)

	p, err := svc.Update(context.Background(), &Profile{ID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.GuardianVerified || p.GuardianToken != "" {
		t.Errorf("expected guardian cleared, got %+v", p)
	}
}

func TestService_Update_GuardianIsSelf(t *testing.T) {
	svc, _ := newTestService(newMockRepo())
	_, err := svc.Update(context.Background(), &Profile{ID: "u1", Email: "asha@example.com", GuardianEmail: "ASHA@example.com"})
	if !validation.IsInvalid(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestService_VerifyGuardian(t *testing.T) {
	repo := newMockRepo(&Profile{ID: "u1", GuardianEmail: "ravi@example.com", GuardianToken: "tok-9"})
	svc, _ := newTestService(repo)

	p, err := svc.VerifyGuardian(context.Background(), "tok-9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.GuardianVerified || p.GuardianToken != "" {
		t.Errorf("expected verified guardian, got %+v", p)
	}

	_, err = svc.VerifyGuardian(context.Background(), "tok-9")
	if !validation.IsInvalid(err) || err.Error() != "Invalid or expired link." {
		t.Errorf("expected token to be single use, got %v", err)
	}
}

func TestService_VerifyGuardian_EmptyToken(t *testing.T) {
	svc, _ := newTestService(newMockRepo())
	if _, err := svc.VerifyGuardian(context.Background(), " "); !validation.IsInvalid(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestService_NotifyGuardian_AdultSkipped(t *testing.T) {
	repo := newMockRepo(&Profile{ID: "u1", FirstName: "Asha", Age: "30", GuardianEmail: "ravi@example.com", GuardianVerified: true})
	svc, sender := newTestService(repo)

	msg, err := svc.NotifyGuardian(context.Background(), "u1", AlertMedicine, "Paracetamol")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != MsgAgeNotInRange {
		t.Errorf("unexpected message %q", msg)
	}
	if len(sender.Sent()) != 0 {
		t.Error("no email expected for an adult")
	}
}

func TestService_NotifyGuardian_SeniorNotified(t *testing.T) {
	repo := newMockRepo(&Profile{ID: "u1", FirstName: "Asha", Age: "65", GuardianEmail: "ravi@example.com", GuardianVerified: true})
	svc, sender := newTestService(repo)

	msg, err := svc.NotifyGuardian(context.Background(), "u1", AlertMedicine, "Paracetamol")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != MsgGuardianNotified {
		t.Errorf("unexpected message %q", msg)
	}

	sent := sender.Sent()
	if len(sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(sent))
	}
	if sent[0].Subject != "MedCare Alert: Asha Update" {
		t.Errorf("unexpected subject %q", sent[0].Subject)
	}
	if !strings.Contains(sent[0].Body, "Asha has just taken their medicine: Paracetamol.") {
		t.Errorf("unexpected body %q", sent[0].Body)
	}
}

func TestService_NotifyGuardian_Appointment(t *testing.T) {
	repo := newMockRepo(&Profile{ID: "u1", FirstName: "Asha", Age: "12", GuardianEmail: "ravi@example.com", GuardianVerified: true})
	svc, sender := newTestService(repo)

	if _, err := svc.NotifyGuardian(context.Background(), "u1", AlertAppointment, "Dr. Rao"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sender.Sent()[0].Body, "attended their appointment with Dr. Rao.") {
		t.Errorf("unexpected body %q", sender.Sent()[0].Body)
	}
}

func TestService_NotifyGuardian_Errors(t *testing.T) {
	repo := newMockRepo(
		&Profile{ID: "noguardian", Age: "70"},
		&Profile{ID: "pending", Age: "70", GuardianEmail: "ravi@example.com"},
	)
	svc, _ := newTestService(repo)
	ctx := context.Background()

	if _, err := svc.NotifyGuardian(ctx, "missing", AlertMedicine, "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.NotifyGuardian(ctx, "noguardian", AlertMedicine, "x"); err == nil || err.Error() != "Guardian email not set in profile." {
		t.Errorf("expected missing guardian error, got %v", err)
	}
	if _, err := svc.NotifyGuardian(ctx, "pending", AlertMedicine, "x"); err == nil || err.Error() != "Guardian email not verified." {
		t.Errorf("expected unverified guardian error, got %v", err)
	}
}

func TestService_NotifyGuardian_SendFailure(t *testing.T) {
	repo := newMockRepo(&Profile{ID: "u1", Age: "70", GuardianEmail: "ravi@example.com", GuardianVerified: true})
	svc, sender := newTestService(repo)
	sender.ShouldFail = true

	_, err := svc.NotifyGuardian(context.Background(), "u1", AlertMedicine, "x")
	if err == nil || validation.IsInvalid(err) {
		t.Errorf("expected delivery error, got %v", err)
	}
}

func TestService_NotifyActivityCompleted(t *testing.T) {
	repo := newMockRepo(
		&Profile{ID: "verified", FirstName: "Asha", Age: "30", GuardianEmail: "ravi@example.com", GuardianVerified: true},
		&Profile{ID: "alone", FirstName: "Dev"},
	)
	svc, sender := newTestService(repo)
	ctx := context.Background()

	sent, err := svc.NotifyActivityCompleted(ctx, "verified", "30 min Brisk Walk", "Exercise")
	if err != nil || !sent {
		t.Fatalf("expected notification, got %v, %v", sent, err)
	}
	msg := sender.Sent()[0]
	if msg.Subject != "Activity Completed: Asha finished a task!" {
		t.Errorf("unexpected subject %q", msg.Subject)
	}
	if !strings.Contains(msg.Body, "Category: Exercise") {
		t.Errorf("unexpected body %q", msg.Body)
	}

	sent, err = svc.NotifyActivityCompleted(ctx, "alone", "Walk", "Exercise")
	if err != nil || sent {
		t.Errorf("expected no notification, got %v, %v", sent, err)
	}

	sent, err = svc.NotifyActivityCompleted(ctx, "missing", "Walk", "Exercise")
	if err != nil || sent {
		t.Errorf("expected no notification without a profile, got %v, %v", sent, err)
	}
}
