package profile

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medcare/medcare/internal/platform/db"
)

type profileRepoPG struct{ db db.Querier }

func NewProfileRepoPG(pool *pgxpool.Pool) Repository {
	return &profileRepoPG{db: pool}
}

const profileCols = `id, first_name, last_name, email, age, gender, blood_group, address, photo,
	guardian_email, guardian_verified, COALESCE(guardian_token, ''), updated_at`

func (r *profileRepoPG) scan(row pgx.Row) (*Profile, error) {
	var p Profile
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Age, &p.Gender,
		&p.BloodGroup, &p.Address, &p.Photo,
		&p.GuardianEmail, &p.GuardianVerified, &p.GuardianToken, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepoPG) Get(ctx context.Context, id string) (*Profile, error) {
	return r.scan(r.db.QueryRow(ctx, `SELECT `+profileCols+` FROM profiles WHERE id = $1`, id))
}

func (r *profileRepoPG) Upsert(ctx context.Context, p *Profile) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO profiles (id, first_name, last_name, email, age, gender, blood_group, address, photo,
			guardian_email, guardian_verified, guardian_token)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,NULLIF($12, ''))
		ON CONFLICT (id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			email = EXCLUDED.email,
			age = EXCLUDED.age,
			gender = EXCLUDED.gender,
			blood_group = EXCLUDED.blood_group,
			address = EXCLUDED.address,
			photo = EXCLUDED.photo,
			guardian_email = EXCLUDED.guardian_email,
			guardian_verified = EXCLUDED.guardian_verified,
			guardian_token = EXCLUDED.guardian_token,
			updated_at = NOW()
		RETURNING updated_at`,
		p.ID, p.FirstName, p.LastName, p.Email, p.Age, p.Gender, p.BloodGroup, p.Address, p.Photo,
		p.GuardianEmail, p.GuardianVerified, p.GuardianToken,
	).Scan(&p.UpdatedAt)
}

func (r *profileRepoPG) VerifyGuardianToken(ctx context.Context, token string) (*Profile, error) {
	return r.scan(r.db.QueryRow(ctx, `
		UPDATE profiles
		SET guardian_verified = TRUE, guardian_token = NULL, updated_at = NOW()
		WHERE guardian_token = $1
		RETURNING `+profileCols, token))
}
