package vitals

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medcare/medcare/internal/platform/validation"
)

const (
	CategoryBloodPressure = "Blood Pressure"
	CategoryBloodSugar    = "Blood Sugar"
	CategoryHeartRate     = "Heart Rate"
	CategoryWeight        = "Weight"
	CategoryTemperature   = "Temperature"
)

// Categories lists every vital category in display order.
var Categories = []string{
	CategoryBloodPressure,
	CategoryBloodSugar,
	CategoryHeartRate,
	CategoryWeight,
	CategoryTemperature,
}

const (
	SourceManual = "manual"
	SourceReport = "report"
)

func IsCategory(s string) bool {
	for _, c := range Categories {
		if s == c {
			return true
		}
	}
	return false
}

// CategoryRule registers the "vitalcategory" validation tag.
var CategoryRule = validation.StringRule{
	Tag:     "vitalcategory",
	Message: "must be one of: " + strings.Join(Categories, ", "),
	Valid:   IsCategory,
}

// VitalLog is one recorded measurement. Value is kept as entered, for example
// "120/80" for blood pressure or "98.6" for temperature.
type VitalLog struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	UserID         string     `db:"user_id" json:"userId"`
	Category       string     `db:"category" json:"category"`
	Value          string     `db:"value" json:"value"`
	Unit           string     `db:"unit" json:"unit"`
	Source         string     `db:"source" json:"source"`
	LinkedReportID *uuid.UUID `db:"linked_report_id" json:"linkedReportId,omitempty"`
	Note           string     `db:"note" json:"note"`
	RecordedAt     time.Time  `db:"recorded_at" json:"recordedAt"`
}

// Latest is the most recent reading of a category, or HasData=false when the
// category has none.
type Latest struct {
	HasData    bool       `json:"hasData"`
	Value      string     `json:"value,omitempty"`
	Unit       string     `json:"unit,omitempty"`
	RecordedAt *time.Time `json:"recordedAt,omitempty"`
}

// Point is one charted reading.
type Point struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Average summarizes a category's numeric readings, rounded to one decimal.
type Average struct {
	Count     int      `json:"count"`
	Value     *float64 `json:"value,omitempty"`
	Systolic  *float64 `json:"systolic,omitempty"`
	Diastolic *float64 `json:"diastolic,omitempty"`
}

// Summary is the per-category dashboard view of a user's vitals.
type Summary struct {
	Categories map[string]Latest  `json:"categories"`
	Series     map[string]Series  `json:"series"`
	Averages   map[string]Average `json:"averages"`
}

// BMIAssessment is returned when a weight is logged together with a height.
type BMIAssessment struct {
	BMI     float64 `json:"bmi"`
	Status  string  `json:"status"`
	Message string  `json:"message"`
}
