package activity

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medcare/medcare/internal/platform/db"
)

type activityRepoPG struct{ db db.Querier }

func NewActivityRepoPG(pool *pgxpool.Pool) Repository {
	return &activityRepoPG{db: pool}
}

const activityCols = `id, user_id, title, category, source, is_completed, notes, created_at`

func (r *activityRepoPG) scan(row pgx.Row) (*Activity, error) {
	var a Activity
	err := row.Scan(&a.ID, &a.UserID, &a.Title, &a.Category, &a.Source, &a.IsCompleted, &a.Notes, &a.CreatedAt)
	return &a, err
}

func (r *activityRepoPG) Create(ctx context.Context, a *Activity) error {
	a.ID = uuid.New()
	return r.db.QueryRow(ctx, `
		INSERT INTO activities (id, user_id, title, category, source, is_completed, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at`,
		a.ID, a.UserID, a.Title, a.Category, a.Source, a.IsCompleted, a.Notes,
	).Scan(&a.CreatedAt)
}

func (r *activityRepoPG) ListByUser(ctx context.Context, userID string) ([]*Activity, error) {
	rows, err := r.db.Query(ctx, `SELECT `+activityCols+` FROM activities
		WHERE user_id = $1 ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*Activity, 0)
	for rows.Next() {
		a, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *activityRepoPG) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM activities WHERE id = $1 AND ($2 = '' OR user_id = $2)`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
