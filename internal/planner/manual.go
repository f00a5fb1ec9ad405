package planner

import "fmt"

// ManualPlan is a macro plan typed in by the user. Calories follow the
// grams: every gram setter recomputes them, while SetCalories only
// changes the stated target and leaves the grams alone.
type ManualPlan struct {
	Calories int `json:"calories" yaml:"calories"`
	Protein  int `json:"protein" yaml:"protein"`
	Carbs    int `json:"carbs" yaml:"carbs"`
	Fat      int `json:"fat" yaml:"fat"`
}

// NewManualPlan builds a plan whose calories are derived from the grams.
func NewManualPlan(protein, carbs, fat int) ManualPlan {
	return ManualPlan{
		Calories: DeriveCaloriesFromMacros(protein, carbs, fat),
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
	}
}

// SetProtein replaces the protein grams and re-derives the calories.
func (p ManualPlan) SetProtein(g int) ManualPlan { return NewManualPlan(g, p.Carbs, p.Fat) }

// SetCarbs replaces the carb grams and re-derives the calories.
func (p ManualPlan) SetCarbs(g int) ManualPlan { return NewManualPlan(p.Protein, g, p.Fat) }

// SetFat replaces the fat grams and re-derives the calories.
func (p ManualPlan) SetFat(g int) ManualPlan { return NewManualPlan(p.Protein, p.Carbs, g) }

// SetCalories overrides the stated calorie target.
func (p ManualPlan) SetCalories(kcal int) ManualPlan {
	p.Calories = kcal
	return p
}

// Check compares the stated calories with the grams.
func (p ManualPlan) Check() ManualPlanCheck {
	return ValidateManualPlan(p.Calories, p.Protein, p.Carbs, p.Fat)
}

// ManualPlanCheck is the preview of a manual plan. Difference is nil when
// the stated and derived calories agree.
type ManualPlanCheck struct {
	EnteredCalories int    `json:"entered_calories" yaml:"entered_calories"`
	DerivedCalories int    `json:"derived_calories" yaml:"derived_calories"`
	Difference      *int   `json:"difference" yaml:"difference"`
	Warning         string `json:"warning,omitempty" yaml:"warning,omitempty"`
	Macros          Macros `json:"macros" yaml:"macros"`
}

// ValidateManualPlan derives calories from the grams and reports any gap
// against the entered calories as a warning. Nothing is corrected.
func ValidateManualPlan(enteredCalories, protein, carbs, fat int) ManualPlanCheck {
	derived := DeriveCaloriesFromMacros(protein, carbs, fat)
	check := ManualPlanCheck{
		EnteredCalories: enteredCalories,
		DerivedCalories: derived,
		Macros:          Macros{Protein: protein, Carbs: carbs, Fat: fat},
	}

	diff := derived - enteredCalories
	if diff < 0 {
		diff = -diff
	}
	if diff > 0 {
		check.Difference = &diff
		check.Warning = fmt.Sprintf(
			"Your macros add up to %d kcal, but your target is %d kcal. Editing individual macros automatically readjusts the calories to the correct amount.",
			derived, enteredCalories,
		)
	}
	return check
}
