package activity

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/medcare/medcare/internal/domain/vitals"
	"github.com/medcare/medcare/internal/platform/validation"
)

const (
	MsgCompletedNotified = "Activity saved & Guardian notified!"
	MsgCompletedAlone    = "Activity saved (No guardian to notify)."
)

// VitalsSummarizer provides the vitals the suggestions are based on.
type VitalsSummarizer interface {
	Summarize(ctx context.Context, userID string) (vitals.Summary, error)
}

// GuardianNotifier alerts a user's guardian about a completed activity.
type GuardianNotifier interface {
	NotifyActivityCompleted(ctx context.Context, userID, title, category string) (bool, error)
}

type Service struct {
	repo     Repository
	vitals   VitalsSummarizer
	guardian GuardianNotifier
}

func NewService(repo Repository, v VitalsSummarizer, g GuardianNotifier) *Service {
	return &Service{repo: repo, vitals: v, guardian: g}
}

// Overview loads stored activities and vitals concurrently and attaches the
// suggestions derived from the vitals.
func (s *Service) Overview(ctx context.Context, userID string) (*Overview, error) {
	var (
		stored []*Activity
		sum    vitals.Summary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stored, err = s.repo.ListByUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		sum, err = s.vitals.Summarize(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &Overview{DB: stored, System: Suggest(sum)}, nil
}

// AddFromText stores a pending activity whose title is the given text.
func (s *Service) AddFromText(ctx context.Context, userID, text string) (*Activity, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, validation.Errorf("text is required")
	}
	a := &Activity{
		UserID:   userID,
		Title:    text,
		Category: GuessCategory(text),
		Source:   SourceDoctor,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Complete stores a as completed and notifies a verified guardian. The
// returned message tells the user whether anyone was notified.
func (s *Service) Complete(ctx context.Context, a *Activity) (string, error) {
	a.Title = strings.TrimSpace(a.Title)
	if a.UserID == "" {
		return "", validation.Errorf("userId is required")
	}
	if a.Title == "" {
		return "", validation.Errorf("title is required")
	}
	if a.Category == "" {
		a.Category = CategoryGeneral
	}
	if a.Source == "" {
		a.Source = SourceUser
	}
	a.IsCompleted = true

	if err := s.repo.Create(ctx, a); err != nil {
		return "", err
	}

	notified, err := s.guardian.NotifyActivityCompleted(ctx, a.UserID, a.Title, a.Category)
	if err != nil {
		return "", err
	}
	if notified {
		return MsgCompletedNotified, nil
	}
	return MsgCompletedAlone, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}
