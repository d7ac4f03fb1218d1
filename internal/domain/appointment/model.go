package appointment

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusUpcoming  = "Upcoming"
	StatusCompleted = "Completed"
)

// Appointment is a booked doctor visit. Date is a plain YYYY-MM-DD string.
type Appointment struct {
	ID         uuid.UUID `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"userId"`
	DoctorName string    `db:"doctor_name" json:"doctorName"`
	Specialty  string    `db:"specialty" json:"specialty"`
	Date       string    `db:"date" json:"date"`
	Time       string    `db:"time" json:"time"`
	Location   string    `db:"location" json:"location"`
	Status     string    `db:"status" json:"status"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}
