package contact

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/medcare/medcare/internal/platform/validation"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NormalizePhone strips spaces and dashes a user may type between digits.
func NormalizePhone(phone string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(phone))
}

func validPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (s *Service) Create(ctx context.Context, c *Contact) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = NormalizePhone(c.Phone)
	if c.UserID == "" {
		return validation.Errorf("userId is required")
	}
	if c.Name == "" {
		return validation.Errorf("name is required")
	}
	if !validPhone(c.Phone) {
		return validation.Errorf("Phone number must be exactly 10 digits")
	}
	return s.repo.Create(ctx, c)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]*Contact, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}
