package reminder

import (
	"time"

	"github.com/google/uuid"
)

const (
	FrequencyOnce   = "once"
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
	FrequencyCustom = "custom"
)

// Reminder fires first at Datetime and then repeats per Frequency. For
// weekly and custom reminders SelectedDays holds the weekday tags.
type Reminder struct {
	ID           uuid.UUID `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"userId"`
	Title        string    `db:"title" json:"title"`
	Datetime     time.Time `db:"datetime" json:"datetime"`
	Frequency    string    `db:"frequency" json:"frequency"`
	SelectedDays []string  `db:"selected_days" json:"selectedDays"`
	IsActive     bool      `db:"is_active" json:"isActive"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
