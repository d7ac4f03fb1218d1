package report

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

func (s *Service) Create(ctx context.Context, r *Report) error {
	if r.UserID == "" {
		return validation.Errorf("userId is required")
	}
	if r.Title == "" {
		return validation.Errorf("title is required")
	}
	if r.DoctorName == "" {
		return validation.Errorf("doctorName is required")
	}
	if r.Date == "" {
		return validation.Errorf("date is required")
	}
	if r.Type == "" {
		r.Type = "General"
	}
	return s.repo.Create(ctx, r)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]*Report, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}
