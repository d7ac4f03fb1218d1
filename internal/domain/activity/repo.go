package activity

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("activity not found")

type Repository interface {
	Create(ctx context.Context, a *Activity) error
	ListByUser(ctx context.Context, userID string) ([]*Activity, error)
	Delete(ctx context.Context, id uuid.UUID, userID string) error
}
