package profile

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medcare/medcare/internal/platform/notification"
	"github.com/medcare/medcare/internal/platform/validation"
)

// Alert kinds accepted by NotifyGuardian.
const (
	AlertMedicine    = "Medicine"
	AlertAppointment = "Appointment"
)

const (
	MsgGuardianNotified = "Guardian notified successfully!"
	MsgAgeNotInRange    = "Age not in range, no email needed."
	MsgGuardianVerified = "Guardian verified successfully!"
)

type Service struct {
	repo       Repository
	notifier   *notification.Notifier
	appBaseURL string
	logger     zerolog.Logger
	newToken   func() string
}

func NewService(repo Repository, notifier *notification.Notifier, appBaseURL string, logger zerolog.Logger) *Service {
	return &Service{
		repo:       repo,
		notifier:   notifier,
		appBaseURL: strings.TrimRight(appBaseURL, "/"),
		logger:     logger.With().Str("component", "guardian").Logger(),
		newToken:   uuid.NewString,
	}
}

func (s *Service) Get(ctx context.Context, id string) (*Profile, error) {
	return s.repo.Get(ctx, id)
}

// Update replaces the editable fields of the profile, creating it on first
// use. Setting a new guardian email issues a fresh verification token and
// emails the link to the guardian.
func (s *Service) Update(ctx context.Context, in *Profile) (*Profile, error) {
	if in.ID == "" {
		return nil, validation.Errorf("id is required")
	}
	in.Email = strings.TrimSpace(in.Email)
	in.GuardianEmail = strings.TrimSpace(in.GuardianEmail)

	current, err := s.repo.Get(ctx, in.ID)
	switch {
	case errors.Is(err, ErrNotFound):
		current = &Profile{ID: in.ID}
	case err != nil:
		return nil, err
	}

	if in.GuardianEmail != "" && strings.EqualFold(in.GuardianEmail, in.Email) {
		return nil, validation.Errorf("Guardian email must be different from your own email.")
	}

	p := *in
	p.GuardianVerified = current.GuardianVerified
	p.GuardianToken = current.GuardianToken

	guardianChanged := !strings.EqualFold(p.GuardianEmail, current.GuardianEmail)
	if guardianChanged {
		p.GuardianVerified = false
		p.GuardianToken = ""
		if p.GuardianEmail != "" {
			p.GuardianToken = s.newToken()
		}
	}

	if err := s.repo.Upsert(ctx, &p); err != nil {
		return nil, err
	}

	if guardianChanged && p.GuardianToken != "" {
		s.sendVerification(ctx, &p)
	}
	return &p, nil
}

// VerificationLink is the page the guardian opens to confirm their email.
func (s *Service) VerificationLink(token string) string {
	return s.appBaseURL + "/verify-guardian/" + token
}

func (s *Service) sendVerification(ctx context.Context, p *Profile) {
	_, err := s.notifier.SendTemplate(ctx, notification.TemplateGuardianVerify, p.GuardianEmail, map[string]string{
		"first_name": p.FirstName,
		"link":       s.VerificationLink(p.GuardianToken),
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", p.ID).Msg("guardian verification email failed")
	}
}

// VerifyGuardian consumes a verification token.
func (s *Service) VerifyGuardian(ctx context.Context, token string) (*Profile, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, validation.Errorf("Invalid or expired link.")
	}
	p, err := s.repo.VerifyGuardianToken(ctx, token)
	if errors.Is(err, ErrNotFound) {
		return nil, validation.Errorf("Invalid or expired link.")
	}
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", p.ID).Msg("guardian verified")
	return p, nil
}

// NotifyGuardian alerts the guardian of a minor or a senior that a medicine was
// taken or an appointment attended. Users aged 18 to 60 are skipped and the
// returned message says so.
func (s *Service) NotifyGuardian(ctx context.Context, userID, kind, item string) (string, error) {
	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	if !p.NeedsGuardian() {
		return MsgAgeNotInRange, nil
	}
	if p.GuardianEmail == "" {
		return "", validation.Errorf("Guardian email not set in profile.")
	}
	if !p.GuardianVerified {
		return "", validation.Errorf("Guardian email not verified.")
	}

	templateID := notification.TemplateAppointmentAttended
	if kind == AlertMedicine {
		templateID = notification.TemplateMedicineTaken
	}
	if _, err := s.notifier.SendTemplate(ctx, templateID, p.GuardianEmail, map[string]string{
		"first_name": p.FirstName,
		"item":       item,
	}); err != nil {
		return "", err
	}

	s.logger.Info().Str("user_id", userID).Str("kind", kind).Msg("guardian notified")
	return MsgGuardianNotified, nil
}

// NotifyActivityCompleted tells a verified guardian that the user finished an
// activity. It reports whether a message was sent. A user without a profile
// has no guardian.
func (s *Service) NotifyActivityCompleted(ctx context.Context, userID, title, category string) (bool, error) {
	p, err := s.repo.Get(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !p.HasVerifiedGuardian() {
		return false, nil
	}
	if _, err := s.notifier.SendTemplate(ctx, notification.TemplateActivityCompleted, p.GuardianEmail, map[string]string{
		"first_name": p.FirstName,
		"item":       title,
		"category":   category,
	}); err != nil {
		return false, err
	}
	return true, nil
}
