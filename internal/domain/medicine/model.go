package medicine

import (
	"time"

	"github.com/google/uuid"
)

// Medicine is a prescribed medication the user takes on a schedule.
type Medicine struct {
	ID           uuid.UUID `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"userId"`
	Name         string    `db:"name" json:"name"`
	Dosage       string    `db:"dosage" json:"dosage"`
	Time         string    `db:"time" json:"time"`
	Frequency    string    `db:"frequency" json:"frequency"`
	Instructions string    `db:"instructions" json:"instructions"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
