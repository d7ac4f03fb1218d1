package history

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const DefaultStatus = "Ongoing"

// Record is the canonical medical history entry.
type Record struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"userId"`
	Title       string    `db:"title" json:"title"`
	Date        string    `db:"date" json:"date"`
	Description string    `db:"description" json:"description"`
	Doctor      string    `db:"doctor" json:"doctor"`
	Status      string    `db:"status" json:"status"`
	Category    string    `db:"category" json:"category"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// Payload is the request body for a history entry. It accepts the canonical
// fields and the older condition/diagnosisDate/treatment names.
type Payload struct {
	UserID      string `json:"userId"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Doctor      string `json:"doctor"`
	Status      string `json:"status" validate:"omitempty,oneof=Ongoing Cured Managed"`
	Category    string `json:"category"`

	Condition     string `json:"condition"`
	DiagnosisDate string `json:"diagnosisDate"`
	Treatment     string `json:"treatment"`
}

// Record converts the payload to the canonical shape. A canonical field wins
// over its legacy counterpart when both are set.
func (p Payload) Record() *Record {
	return &Record{
		UserID:      p.UserID,
		Title:       firstNonBlank(p.Title, p.Condition),
		Date:        firstNonBlank(p.Date, p.DiagnosisDate),
		Description: firstNonBlank(p.Description, p.Treatment),
		Doctor:      strings.TrimSpace(p.Doctor),
		Status:      strings.TrimSpace(p.Status),
		Category:    strings.TrimSpace(p.Category),
	}
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
