package vitals

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// ParseBloodPressure splits "systolic/diastolic". A side that is missing or
// not a number is 0.
func ParseBloodPressure(value string) (systolic, diastolic float64) {
	parts := strings.Split(value, "/")
	systolic = ParseNumber(parts[0])
	if len(parts) > 1 {
		diastolic = ParseNumber(parts[1])
	}
	return systolic, diastolic
}

// ParseNumber reads a reading as a number. Anything unparseable, NaN or
// infinite becomes 0 so one bad entry never breaks a chart.
func ParseNumber(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Summarize groups logs by category and derives the latest reading, chart
// series and averages of each. logs may arrive in any order; readings with the
// same RecordedAt keep their relative order.
func Summarize(logs []*VitalLog) Summary {
	ordered := make([]*VitalLog, len(logs))
	copy(ordered, logs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].RecordedAt.Before(ordered[j].RecordedAt)
	})

	byCategory := make(map[string][]*VitalLog, len(Categories))
	for _, l := range ordered {
		byCategory[l.Category] = append(byCategory[l.Category], l)
	}

	sum := Summary{
		Categories: make(map[string]Latest, len(Categories)),
		Series:     make(map[string]Series, len(Categories)),
		Averages:   make(map[string]Average, len(Categories)),
	}
	for _, cat := range Categories {
		entries := byCategory[cat]
		sum.Categories[cat] = latestOf(entries)
		sum.Series[cat] = seriesOf(cat, entries)
		sum.Averages[cat] = averageOf(sum.Series[cat], len(entries))
	}
	return sum
}

func latestOf(entries []*VitalLog) Latest {
	if len(entries) == 0 {
		return Latest{HasData: false}
	}
	last := entries[len(entries)-1]
	at := last.RecordedAt
	return Latest{
		HasData:    true,
		Value:      last.Value,
		Unit:       last.Unit,
		RecordedAt: &at,
	}
}

func seriesOf(category string, entries []*VitalLog) Series {
	s := newSeries(category)
	for _, l := range entries {
		if s.composite {
			sys, dia := ParseBloodPressure(l.Value)
			s.Systolic = append(s.Systolic, Point{Date: l.RecordedAt, Value: sys})
			s.Diastolic = append(s.Diastolic, Point{Date: l.RecordedAt, Value: dia})
			continue
		}
		s.Points = append(s.Points, Point{Date: l.RecordedAt, Value: ParseNumber(l.Value)})
	}
	return s
}

func averageOf(s Series, count int) Average {
	avg := Average{Count: count}
	if count == 0 {
		return avg
	}
	if s.composite {
		sys, dia := mean(s.Systolic), mean(s.Diastolic)
		avg.Systolic, avg.Diastolic = &sys, &dia
		return avg
	}
	v := mean(s.Points)
	avg.Value = &v
	return avg
}

func mean(points []Point) float64 {
	if len(points) == 0 {
		return 0
	}
	var total float64
	for _, p := range points {
		total += p.Value
	}
	return round1(total / float64(len(points)))
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
