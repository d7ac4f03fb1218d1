package activity

import (
	"strings"

	"github.com/medcare/medcare/internal/domain/vitals"
)

const (
	highSystolic  = 130
	highDiastolic = 85
	highWeightKg  = 85
)

// Suggest derives system activities from the latest vitals. The Vitamin D
// suggestion is always present.
func Suggest(sum vitals.Summary) []Suggestion {
	out := make([]Suggestion, 0, 5)

	if bp := sum.Categories[vitals.CategoryBloodPressure]; bp.HasData {
		sys, dia := vitals.ParseBloodPressure(bp.Value)
		if sys > highSystolic || dia > highDiastolic {
			out = append(out,
				Suggestion{ID: "sys_bp_1", Title: "10 min Meditation (High BP Alert)", Category: CategoryMentalHealth, Source: SourceSystem},
				Suggestion{ID: "sys_bp_2", Title: "Reduce Salt Intake Today", Category: CategoryDiet, Source: SourceSystem},
			)
		}
	}

	if w := sum.Categories[vitals.CategoryWeight]; w.HasData && vitals.ParseNumber(w.Value) > highWeightKg {
		out = append(out,
			Suggestion{ID: "sys_weight_1", Title: "30 min Brisk Walk", Category: CategoryExercise, Source: SourceSystem},
			Suggestion{ID: "sys_weight_2", Title: "Avoid Sugary Drinks", Category: CategoryDiet, Source: SourceSystem},
		)
	}

	return append(out, Suggestion{ID: "sys_gen_1", Title: "Stand in Sun for 15 mins (Vitamin D)", Category: CategoryGeneral, Source: SourceSystem})
}

var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{CategoryExercise, []string{"yoga", "walk", "run", "exercise"}},
	{CategoryMentalHealth, []string{"meditat", "sleep", "stress"}},
	{CategoryDiet, []string{"eat", "diet", "food", "drink"}},
}

// GuessCategory picks a category from keywords in free text. The first
// matching group wins; nothing matching is General.
func GuessCategory(text string) string {
	lower := strings.ToLower(text)
	for _, group := range categoryKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return group.category
			}
		}
	}
	return CategoryGeneral
}
