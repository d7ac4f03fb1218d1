package medicine

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/medcare/medcare/internal/platform/validation"
)

const DefaultFrequency = "Daily"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, m *Medicine) error {
	m.Name = strings.TrimSpace(m.Name)
	if m.UserID == "" {
		return validation.Errorf("userId is required")
	}
	if m.Name == "" {
		return validation.Errorf("name is required")
	}
	if m.Dosage == "" {
		return validation.Errorf("dosage is required")
	}
	if m.Time == "" {
		return validation.Errorf("time is required")
	}
	if m.Frequency == "" {
		m.Frequency = DefaultFrequency
	}
	return s.repo.Create(ctx, m)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]*Medicine, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}
