package history

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medcare/medcare/internal/platform/db"
)

type historyRepoPG struct{ db db.Querier }

func NewHistoryRepoPG(pool *pgxpool.Pool) Repository {
	return &historyRepoPG{db: pool}
}

const historyCols = `id, user_id, title, date, description, doctor, status, category, created_at`

func (r *historyRepoPG) scan(row pgx.Row) (*Record, error) {
	var h Record
	err := row.Scan(&h.ID, &h.UserID, &h.Title, &h.Date, &h.Description, &h.Doctor,
		&h.Status, &h.Category, &h.CreatedAt)
	return &h, err
}

func (r *historyRepoPG) Create(ctx context.Context, h *Record) error {
	h.ID = uuid.New()
	return r.db.QueryRow(ctx, `
		INSERT INTO history_records (id, user_id, title, date, description, doctor, status, category)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at`,
		h.ID, h.UserID, h.Title, h.Date, h.Description, h.Doctor, h.Status, h.Category,
	).Scan(&h.CreatedAt)
}

func (r *historyRepoPG) ListByUser(ctx context.Context, userID string) ([]*Record, error) {
	rows, err := r.db.Query(ctx, `SELECT `+historyCols+` FROM history_records
		WHERE user_id = $1 ORDER BY date DESC, created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*Record, 0)
	for rows.Next() {
		h, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, h)
	}
	return items, rows.Err()
}

func (r *historyRepoPG) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM history_records WHERE id = $1 AND ($2 = '' OR user_id = $2)`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
