package activity

import (
	"testing"
	"time"

	"github.com/medcare/medcare/internal/domain/vitals"
)

func summaryWith(logs ...*vitals.VitalLog) vitals.Summary {
	return vitals.Summarize(logs)
}

func suggestionIDs(s []Suggestion) []string {
	ids := make([]string, len(s))
	for i, x := range s {
		ids[i] = x.ID
	}
	return ids
}

func equalIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestSuggest_NoVitals(t *testing.T) {
	got := suggestionIDs(Suggest(summaryWith()))
	if !equalIDs(got, []string{"sys_gen_1"}) {
		t.Errorf("unexpected suggestions %v", got)
	}
}

func TestSuggest_HighBloodPressure(t *testing.T) {
	at := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	for _, value := range []string{"135/80", "120/90"} {
		sum := summaryWith(&vitals.VitalLog{Category: vitals.CategoryBloodPressure, Value: value, RecordedAt: at})
		got := suggestionIDs(Suggest(sum))
		if !equalIDs(got, []string{"sys_bp_1", "sys_bp_2", "sys_gen_1"}) {
			t.Errorf("%s: unexpected suggestions %v", value, got)
		}
	}
}

func TestSuggest_UsesLatestReading(t *testing.T) {
	sum := summaryWith(
		&vitals.VitalLog{Category: vitals.CategoryBloodPressure, Value: "150/95", RecordedAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)},
		&vitals.VitalLog{Category: vitals.CategoryBloodPressure, Value: "118/76", RecordedAt: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)},
	)
	got := suggestionIDs(Suggest(sum))
	if !equalIDs(got, []string{"sys_gen_1"}) {
		t.Errorf("unexpected suggestions %v", got)
	}
}

func TestSuggest_HighWeight(t *testing.T) {
	at := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	sum := summaryWith(
		&vitals.VitalLog{Category: vitals.CategoryWeight, Value: "92", RecordedAt: at},
		&vitals.VitalLog{Category: vitals.CategoryBloodPressure, Value: "140/90", RecordedAt: at},
	)
	got := suggestionIDs(Suggest(sum))
	want := []string{"sys_bp_1", "sys_bp_2", "sys_weight_1", "sys_weight_2", "sys_gen_1"}
	if !equalIDs(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSuggest_UnparseableWeight(t *testing.T) {
	sum := summaryWith(&vitals.VitalLog{Category: vitals.CategoryWeight, Value: "heavy", RecordedAt: time.Now()})
	if got := suggestionIDs(Suggest(sum)); !equalIDs(got, []string{"sys_gen_1"}) {
		t.Errorf("unexpected suggestions %v", got)
	}
}

func TestGuessCategory(t *testing.T) {
	tests := map[string]string{
		"Morning Yoga for 20 minutes": CategoryExercise,
		"Walk after dinner":           CategoryExercise,
		"Meditation before bed":       CategoryMentalHealth,
		"Sleep 8 hours":               CategoryMentalHealth,
		"Drink 3L water":              CategoryDiet,
		"Low salt diet":               CategoryDiet,
		"Check blood pressure":        CategoryGeneral,
		"walk and eat fruit":          CategoryExercise,
	}
	for text, want := range tests {
		if got := GuessCategory(text); got != want {
			t.Errorf("GuessCategory(%q) = %s, want %s", text, got, want)
		}
	}
}
