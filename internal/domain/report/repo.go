package report

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("report not found")

type Repository interface {
	Create(ctx context.Context, r *Report) error
	// ListByUser returns the user's reports, newest date first.
	ListByUser(ctx context.Context, userID string) ([]*Report, error)
	Delete(ctx context.Context, id uuid.UUID, userID string) error
}
