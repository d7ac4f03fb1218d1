package reminder

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("reminder not found")

type Repository interface {
	Create(ctx context.Context, r *Reminder) error
	// ListByUser returns the user's reminders ordered by first occurrence.
	ListByUser(ctx context.Context, userID string) ([]*Reminder, error)
	Delete(ctx context.Context, id uuid.UUID, userID string) error
}
