package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/medcare/medcare/internal/platform/validation"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var validStatuses = map[string]bool{
	StatusUpcoming:  true,
	StatusCompleted: true,
}

func (s *Service) Create(ctx context.Context, a *Appointment) error {
	if a.UserID == "" {
		return validation.Errorf("userId is required")
	}
	if a.DoctorName == "" {
		return validation.Errorf("doctorName is required")
	}
	if a.Date == "" {
		return validation.Errorf("date is required")
	}
	if a.Time == "" {
		return validation.Errorf("time is required")
	}
	if a.Specialty == "" {
		a.Specialty = "General"
	}
	if a.Location == "" {
		a.Location = "Clinic"
	}
	if a.Status == "" {
		a.Status = StatusUpcoming
	}
	if !validStatuses[a.Status] {
		return validation.Errorf("invalid status: %s", a.Status)
	}
	return s.repo.Create(ctx, a)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]*Appointment, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}
