package report

import (
	"time"

	"github.com/google/uuid"
)

// Report is an uploaded medical document. FileURL is the location assigned by
// the file storage service; the API never reads the file.
type Report struct {
	ID         uuid.UUID `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"userId"`
	Title      string    `db:"title" json:"title"`
	DoctorName string    `db:"doctor_name" json:"doctorName"`
	Date       string    `db:"date" json:"date"`
	Type       string    `db:"type" json:"type"`
	Notes      string    `db:"notes" json:"notes"`
	FileURL    string    `db:"file_url" json:"fileUrl"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}
