package vitals

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medcare/medcare/internal/platform/db"
)

type vitalRepoPG struct{ db db.Querier }

func NewVitalRepoPG(pool *pgxpool.Pool) Repository {
	return &vitalRepoPG{db: pool}
}

const vitalCols = `id, user_id, category, value, unit, source, linked_report_id, note, recorded_at`

func (r *vitalRepoPG) scan(row pgx.Row) (*VitalLog, error) {
	var l VitalLog
	err := row.Scan(&l.ID, &l.UserID, &l.Category, &l.Value, &l.Unit, &l.Source,
		&l.LinkedReportID, &l.Note, &l.RecordedAt)
	return &l, err
}

func (r *vitalRepoPG) Create(ctx context.Context, l *VitalLog) error {
	l.ID = uuid.New()
	return r.db.QueryRow(ctx, `
		INSERT INTO vital_logs (id, user_id, category, value, unit, source, linked_report_id, note, recorded_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING recorded_at`,
		l.ID, l.UserID, l.Category, l.Value, l.Unit, l.Source, l.LinkedReportID, l.Note, l.RecordedAt,
	).Scan(&l.RecordedAt)
}

func (r *vitalRepoPG) ListByUser(ctx context.Context, userID string) ([]*VitalLog, error) {
	rows, err := r.db.Query(ctx, `SELECT `+vitalCols+` FROM vital_logs
		WHERE user_id = $1 ORDER BY recorded_at ASC, seq ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*VitalLog, 0)
	for rows.Next() {
		l, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

func (r *vitalRepoPG) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM vital_logs WHERE id = $1 AND ($2 = '' OR user_id = $2)`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
