package medicine

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("medicine not found")

type Repository interface {
	Create(ctx context.Context, m *Medicine) error
	ListByUser(ctx context.Context, userID string) ([]*Medicine, error)
	Delete(ctx context.Context, id uuid.UUID, userID string) error
}
