package reminder

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medcare/medcare/internal/platform/db"
)

type reminderRepoPG struct{ db db.Querier }

func NewReminderRepoPG(pool *pgxpool.Pool) Repository {
	return &reminderRepoPG{db: pool}
}

const reminderCols = `id, user_id, title, datetime, frequency, selected_days, is_active, created_at`

func (r *reminderRepoPG) scan(row pgx.Row) (*Reminder, error) {
	var rem Reminder
	err := row.Scan(&rem.ID, &rem.UserID, &rem.Title, &rem.Datetime, &rem.Frequency,
		&rem.SelectedDays, &rem.IsActive, &rem.CreatedAt)
	if rem.SelectedDays == nil {
		rem.SelectedDays = []string{}
	}
	return &rem, err
}

func (r *reminderRepoPG) Create(ctx context.Context, rem *Reminder) error {
	rem.ID = uuid.New()
	return r.db.QueryRow(ctx, `
		INSERT INTO reminders (id, user_id, title, datetime, frequency, selected_days, is_active)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at`,
		rem.ID, rem.UserID, rem.Title, rem.Datetime, rem.Frequency, rem.SelectedDays, rem.IsActive,
	).Scan(&rem.CreatedAt)
}

func (r *reminderRepoPG) ListByUser(ctx context.Context, userID string) ([]*Reminder, error) {
	rows, err := r.db.Query(ctx, `SELECT `+reminderCols+` FROM reminders
		WHERE user_id = $1 ORDER BY datetime ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*Reminder, 0)
	for rows.Next() {
		rem, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, rem)
	}
	return items, rows.Err()
}

func (r *reminderRepoPG) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reminders WHERE id = $1 AND ($2 = '' OR user_id = $2)`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
