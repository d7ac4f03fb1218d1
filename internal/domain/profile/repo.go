package profile

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("profile not found")

type Repository interface {
	Get(ctx context.Context, id string) (*Profile, error)
	// Upsert inserts the profile or replaces the stored one with the same id.
	Upsert(ctx context.Context, p *Profile) error
	// VerifyGuardianToken marks the owner of token as verified and clears the
	// token. Unknown tokens return ErrNotFound.
	VerifyGuardianToken(ctx context.Context, token string) (*Profile, error)
}
