package contact

import (
	"time"

	"github.com/google/uuid"
)

// Contact is an emergency contact. Phone is exactly ten digits.
type Contact struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	Name      string    `db:"name" json:"name"`
	Relation  string    `db:"relation" json:"relation"`
	Phone     string    `db:"phone" json:"phone"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
