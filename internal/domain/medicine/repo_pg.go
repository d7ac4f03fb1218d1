package medicine

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medcare/medcare/internal/platform/db"
)

type medicineRepoPG struct{ db db.Querier }

func NewMedicineRepoPG(pool *pgxpool.Pool) Repository {
	return &medicineRepoPG{db: pool}
}

const medicineCols = `id, user_id, name, dosage, time, frequency, instructions, created_at`

func (r *medicineRepoPG) scan(row pgx.Row) (*Medicine, error) {
	var m Medicine
	err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.Dosage, &m.Time, &m.Frequency,
		&m.Instructions, &m.CreatedAt)
	return &m, err
}

func (r *medicineRepoPG) Create(ctx context.Context, m *Medicine) error {
	m.ID = uuid.New()
	return r.db.QueryRow(ctx, `
		INSERT INTO medicines (id, user_id, name, dosage, time, frequency, instructions)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at`,
		m.ID, m.UserID, m.Name, m.Dosage, m.Time, m.Frequency, m.Instructions,
	).Scan(&m.CreatedAt)
}

func (r *medicineRepoPG) ListByUser(ctx context.Context, userID string) ([]*Medicine, error) {
	rows, err := r.db.Query(ctx, `SELECT `+medicineCols+` FROM medicines
		WHERE user_id = $1 ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*Medicine, 0)
	for rows.Next() {
		m, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *medicineRepoPG) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM medicines WHERE id = $1 AND ($2 = '' OR user_id = $2)`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
