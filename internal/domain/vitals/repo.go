package vitals

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("vital log not found")

type Repository interface {
	Create(ctx context.Context, l *VitalLog) error
	// ListByUser returns the user's logs oldest first, ties in insertion order.
	ListByUser(ctx context.Context, userID string) ([]*VitalLog, error)
	Delete(ctx context.Context, id uuid.UUID, userID string) error
}
