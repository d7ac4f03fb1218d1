package profile

import (
	"strconv"
	"strings"
	"time"
)

// Profile holds a user's personal details and guardian settings. ID is the
// authenticated user id.
type Profile struct {
	ID               string    `db:"id" json:"id"`
	FirstName        string    `db:"first_name" json:"firstName"`
	LastName         string    `db:"last_name" json:"lastName"`
	Email            string    `db:"email" json:"email"`
	Age              string    `db:"age" json:"age"`
	Gender           string    `db:"gender" json:"gender"`
	BloodGroup       string    `db:"blood_group" json:"bloodGroup"`
	Address          string    `db:"address" json:"address"`
	Photo            string    `db:"photo" json:"photo"`
	GuardianEmail    string    `db:"guardian_email" json:"guardianEmail"`
	GuardianVerified bool      `db:"guardian_verified" json:"isGuardianVerified"`
	GuardianToken    string    `db:"guardian_token" json:"-"`
	UpdatedAt        time.Time `db:"updated_at" json:"updatedAt"`
}

// AgeYears returns the age as a whole number. An empty or unparseable age is 0.
func (p *Profile) AgeYears() int {
	n, err := strconv.Atoi(strings.TrimSpace(p.Age))
	if err != nil {
		return 0
	}
	return n
}

// NeedsGuardian reports whether the user's age calls for guardian alerts.
func (p *Profile) NeedsGuardian() bool {
	age := p.AgeYears()
	return age < 18 || age > 60
}

// HasVerifiedGuardian reports whether alerts can be delivered.
func (p *Profile) HasVerifiedGuardian() bool {
	return p.GuardianEmail != "" && p.GuardianVerified
}
