package planner

import "math"

// Energy density of each macronutrient in kcal per gram.
const (
	ProteinKcalPerGram = 4
	CarbsKcalPerGram   = 4
	FatKcalPerGram     = 9
)

// MaxGrams bounds every gram amount so that 4p + 4c + 9f stays within a
// 32-bit integer.
const MaxGrams = 100_000_000

// Macros holds whole-gram amounts of each macronutrient.
type Macros struct {
	Protein int `json:"protein" yaml:"protein"`
	Carbs   int `json:"carbs" yaml:"carbs"`
	Fat     int `json:"fat" yaml:"fat"`
}

// Calories returns the energy in the macros.
func (m Macros) Calories() int {
	return DeriveCaloriesFromMacros(m.Protein, m.Carbs, m.Fat)
}

// DeriveCaloriesFromMacros returns 4*protein + 4*carbs + 9*fat.
func DeriveCaloriesFromMacros(protein, carbs, fat int) int {
	return protein*ProteinKcalPerGram + carbs*CarbsKcalPerGram + fat*FatKcalPerGram
}

// AllocateMacros splits a calorie target into macro grams for a goal.
//
// Protein and fat are fixed from body weight; carbs take whatever calories
// remain, floored at zero. Each amount is rounded on its own and the
// returned total is computed from the rounded grams. When protein and fat
// alone exceed the target the total ends up above it, and no warning is
// produced for that case.
func AllocateMacros(targetCalories float64, goal Goal, weightLb float64) (Macros, int, error) {
	p, ok := goalProfiles[goal]
	if !ok || !positive(weightLb) {
		return Macros{}, 0, ErrInvalidInput
	}

	proteinRaw := p.proteinPerLb * weightLb
	fatRaw := p.fatPerLb * weightLb
	carbCals := math.Max(0, targetCalories-(proteinRaw*ProteinKcalPerGram+fatRaw*FatKcalPerGram))
	carbsRaw := carbCals / CarbsKcalPerGram

	protein, okP := roundGrams(proteinRaw)
	carbs, okC := roundGrams(carbsRaw)
	fat, okF := roundGrams(fatRaw)
	if !okP || !okC || !okF {
		return Macros{}, 0, ErrInvalidInput
	}

	m := Macros{Protein: protein, Carbs: carbs, Fat: fat}
	return m, m.Calories(), nil
}

// roundGrams rounds half away from zero and reports false when the result
// is outside ±MaxGrams.
func roundGrams(x float64) (int, bool) {
	r := math.Round(x)
	if math.IsNaN(r) || math.Abs(r) > MaxGrams {
		return 0, false
	}
	return int(r), true
}
