package vitals

import "encoding/json"

// Series is the oldest-first chart data of one category. Blood pressure has
// systolic and diastolic sub-series; every other category has Points.
type Series struct {
	Points    []Point
	Systolic  []Point
	Diastolic []Point
	composite bool
}

func newSeries(category string) Series {
	if category == CategoryBloodPressure {
		return Series{Systolic: []Point{}, Diastolic: []Point{}, composite: true}
	}
	return Series{Points: []Point{}}
}

// IsComposite reports whether the series is split into systolic and diastolic.
func (s Series) IsComposite() bool { return s.composite }

func (s Series) MarshalJSON() ([]byte, error) {
	if s.composite {
		return json.Marshal(struct {
			Systolic  []Point `json:"systolic"`
			Diastolic []Point `json:"diastolic"`
		}{nonNil(s.Systolic), nonNil(s.Diastolic)})
	}
	return json.Marshal(struct {
		Points []Point `json:"points"`
	}{nonNil(s.Points)})
}

func nonNil(p []Point) []Point {
	if p == nil {
		return []Point{}
	}
	return p
}
