package activity

import (
	"time"

	"github.com/google/uuid"
)

const (
	CategoryExercise     = "Exercise"
	CategoryMentalHealth = "Mental Health"
	CategoryDiet         = "Diet"
	CategoryGeneral      = "General"
)

const (
	SourceUser   = "User"
	SourceDoctor = "Doctor"
	SourceSystem = "System"
)

type Activity struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"userId"`
	Title       string    `db:"title" json:"title"`
	Category    string    `db:"category" json:"category"`
	Source      string    `db:"source" json:"source"`
	IsCompleted bool      `db:"is_completed" json:"isCompleted"`
	Notes       string    `db:"notes" json:"notes"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// Suggestion is a system-generated activity derived from recent vitals. It is
// never stored.
type Suggestion struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Source   string `json:"source"`
}

// Overview is the activities page: stored activities plus suggestions.
type Overview struct {
	DB     []*Activity  `json:"db"`
	System []Suggestion `json:"system"`
}
