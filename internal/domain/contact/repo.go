package contact

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("contact not found")

type Repository interface {
	Create(ctx context.Context, c *Contact) error
	ListByUser(ctx context.Context, userID string) ([]*Contact, error)
	Delete(ctx context.Context, id uuid.UUID, userID string) error
}
