package vitals

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medcare/medcare/internal/platform/validation"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Summarize loads every log of the user and aggregates it per category. A user
// without logs gets the no-data sentinel for every category.
func (s *Service) Summarize(ctx context.Context, userID string) (Summary, error) {
	logs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(logs), nil
}

// Latest returns the most recent reading of one category.
func (s *Service) Latest(ctx context.Context, userID, category string) (Latest, error) {
	sum, err := s.Summarize(ctx, userID)
	if err != nil {
		return Latest{}, err
	}
	return sum.Categories[category], nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]*VitalLog, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Log stores a reading. When a weight is logged with a positive height in
// centimetres the BMI assessment is returned as well.
func (s *Service) Log(ctx context.Context, l *VitalLog, heightCm float64) (*BMIAssessment, error) {
	l.Value = strings.TrimSpace(l.Value)
	if l.UserID == "" {
		return nil, validation.Errorf("userId is required")
	}
	if !IsCategory(l.Category) {
		return nil, validation.Errorf("category %s", CategoryRule.Message)
	}
	if l.Value == "" {
		return nil, validation.Errorf("value is required")
	}
	if l.Source == "" {
		l.Source = SourceManual
	}
	if l.Source == SourceReport && l.LinkedReportID == nil {
		return nil, validation.Errorf("linkedReportId is required for report readings")
	}
	if l.RecordedAt.IsZero() {
		l.RecordedAt = s.now().UTC()
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	if l.Category != CategoryWeight || heightCm <= 0 {
		return nil, nil
	}
	a, ok := AssessBMI(ParseNumber(l.Value), heightCm)
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}
