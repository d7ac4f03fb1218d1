package appointment

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("appointment not found")

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	// ListByUser returns the user's appointments ordered by date ascending.
	ListByUser(ctx context.Context, userID string) ([]*Appointment, error)
	// Delete removes an appointment owned by userID ("" matches any owner).
	Delete(ctx context.Context, id uuid.UUID, userID string) error
}
