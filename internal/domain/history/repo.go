package history

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("history record not found")

type Repository interface {
	Create(ctx context.Context, r *Record) error
	// ListByUser returns the user's records, newest date first.
	ListByUser(ctx context.Context, userID string) ([]*Record, error)
	Delete(ctx context.Context, id uuid.UUID, userID string) error
}
