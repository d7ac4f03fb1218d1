package contact

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medcare/medcare/internal/platform/db"
)

type contactRepoPG struct{ db db.Querier }

func NewContactRepoPG(pool *pgxpool.Pool) Repository {
	return &contactRepoPG{db: pool}
}

const contactCols = `id, user_id, name, relation, phone, created_at`

func (r *contactRepoPG) scan(row pgx.Row) (*Contact, error) {
	var c Contact
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Relation, &c.Phone, &c.CreatedAt)
	return &c, err
}

func (r *contactRepoPG) Create(ctx context.Context, c *Contact) error {
	c.ID = uuid.New()
	return r.db.QueryRow(ctx, `
		INSERT INTO contacts (id, user_id, name, relation, phone)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at`,
		c.ID, c.UserID, c.Name, c.Relation, c.Phone,
	).Scan(&c.CreatedAt)
}

func (r *contactRepoPG) ListByUser(ctx context.Context, userID string) ([]*Contact, error) {
	rows, err := r.db.Query(ctx, `SELECT `+contactCols+` FROM contacts
		WHERE user_id = $1 ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*Contact, 0)
	for rows.Next() {
		c, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (r *contactRepoPG) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1 AND ($2 = '' OR user_id = $2)`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
