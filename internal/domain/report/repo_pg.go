package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medcare/medcare/internal/platform/db"
)

type reportRepoPG struct{ db db.Querier }

func NewReportRepoPG(pool *pgxpool.Pool) Repository {
	return &reportRepoPG{db: pool}
}

const reportCols = `id, user_id, title, doctor_name, date, type, notes, file_url, created_at`

func (r *reportRepoPG) scan(row pgx.Row) (*Report, error) {
	var rep Report
	err := row.Scan(&rep.ID, &rep.UserID, &rep.Title, &rep.DoctorName, &rep.Date, &rep.Type,
		&rep.Notes, &rep.FileURL, &rep.CreatedAt)
	return &rep, err
}

func (r *reportRepoPG) Create(ctx context.Context, rep *Report) error {
	rep.ID = uuid.New()
	return r.db.QueryRow(ctx, `
		INSERT INTO reports (id, user_id, title, doctor_name, date, type, notes, file_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at`,
		rep.ID, rep.UserID, rep.Title, rep.DoctorName, rep.Date, rep.Type, rep.Notes, rep.FileURL,
	).Scan(&rep.CreatedAt)
}

func (r *reportRepoPG) ListByUser(ctx context.Context, userID string) ([]*Report, error) {
	rows, err := r.db.Query(ctx, `SELECT `+reportCols+` FROM reports
		WHERE user_id = $1 ORDER BY date DESC, created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*Report, 0)
	for rows.Next() {
		rep, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, rep)
	}
	return items, rows.Err()
}

func (r *reportRepoPG) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reports WHERE id = $1 AND ($2 = '' OR user_id = $2)`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
