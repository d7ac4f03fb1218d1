package appointment

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medcare/medcare/internal/platform/db"
)

type appointmentRepoPG struct{ db db.Querier }

func NewAppointmentRepoPG(pool *pgxpool.Pool) Repository {
	return &appointmentRepoPG{db: pool}
}

const appointmentCols = `id, user_id, doctor_name, specialty, date, time, location, status,
	created_at, updated_at`

func (r *appointmentRepoPG) scan(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.UserID, &a.DoctorName, &a.Specialty, &a.Date, &a.Time,
		&a.Location, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func (r *appointmentRepoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	return r.db.QueryRow(ctx, `
		INSERT INTO appointments (id, user_id, doctor_name, specialty, date, time, location, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at, updated_at`,
		a.ID, a.UserID, a.DoctorName, a.Specialty, a.Date, a.Time, a.Location, a.Status,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
}

func (r *appointmentRepoPG) ListByUser(ctx context.Context, userID string) ([]*Appointment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+appointmentCols+` FROM appointments
		WHERE user_id = $1 ORDER BY date ASC, created_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*Appointment, 0)
	for rows.Next() {
		a, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *appointmentRepoPG) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM appointments WHERE id = $1 AND ($2 = '' OR user_id = $2)`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
