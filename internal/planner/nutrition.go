package planner

import "math"

// FoodPortion is one food item in a meal with its per-serving nutrients.
type FoodPortion struct {
	Name     string  `json:"name,omitempty" yaml:"name,omitempty"`
	Calories float64 `json:"calories" yaml:"calories"`
	Protein  float64 `json:"protein" yaml:"protein"`
	Carbs    float64 `json:"carbs" yaml:"carbs"`
	Fat      float64 `json:"fat" yaml:"fat"`
	Quantity float64 `json:"quantity" yaml:"quantity"`
}

// NutritionTotals is the summed nutrition of a set of portions.
type NutritionTotals struct {
	Calories float64 `json:"calories" yaml:"calories"`
	Protein  float64 `json:"protein" yaml:"protein"`
	Carbs    float64 `json:"carbs" yaml:"carbs"`
	Fat      float64 `json:"fat" yaml:"fat"`
}

// Add returns the sum of two totals.
func (t NutritionTotals) Add(o NutritionTotals) NutritionTotals {
	return NutritionTotals{
		Calories: t.Calories + o.Calories,
		Protein:  t.Protein + o.Protein,
		Carbs:    t.Carbs + o.Carbs,
		Fat:      t.Fat + o.Fat,
	}
}

// Totals returns the portion's nutrients scaled by its quantity.
func (p FoodPortion) Totals() NutritionTotals {
	return NutritionTotals{
		Calories: p.Calories * p.Quantity,
		Protein:  p.Protein * p.Quantity,
		Carbs:    p.Carbs * p.Quantity,
		Fat:      p.Fat * p.Quantity,
	}
}

// SumNutrition multiplies each portion by its quantity and adds them up.
// Portions with a quantity of zero or less have been removed from the meal
// and are skipped.
func SumNutrition(portions []FoodPortion) NutritionTotals {
	var t NutritionTotals
	for _, p := range portions {
		if !positive(p.Quantity) {
			continue
		}
		t = t.Add(p.Totals())
	}
	return t
}

// DailyTargets are the calorie and macro goals a day is measured against.
type DailyTargets struct {
	Calories int `json:"calories" yaml:"calories"`
	Protein  int `json:"protein" yaml:"protein"`
	Carbs    int `json:"carbs" yaml:"carbs"`
	Fat      int `json:"fat" yaml:"fat"`
}

// Validate rejects negative targets.
func (t DailyTargets) Validate() error {
	if t.Calories < 0 || t.Protein < 0 || t.Carbs < 0 || t.Fat < 0 {
		return ErrInvalidInput
	}
	return nil
}

// DefaultDailyTargets apply until a user saves a goal of their own.
var DefaultDailyTargets = DailyTargets{Calories: 2000, Protein: 120, Carbs: 200, Fat: 65}

// Progress compares consumed nutrition with the daily targets.
type Progress struct {
	Consumed          NutritionTotals `json:"consumed" yaml:"consumed"`
	Targets           DailyTargets    `json:"targets" yaml:"targets"`
	RemainingCalories float64         `json:"remaining_calories" yaml:"remaining_calories"`
	CaloriePercent    float64         `json:"calorie_percent" yaml:"calorie_percent"`
}

// DailyProgress reports remaining calories, which go negative once the
// target is exceeded, and the consumed percentage clamped to [0, 100].
func DailyProgress(consumed NutritionTotals, targets DailyTargets) Progress {
	p := Progress{
		Consumed:          consumed,
		Targets:           targets,
		RemainingCalories: float64(targets.Calories) - consumed.Calories,
	}
	if targets.Calories > 0 {
		pct := consumed.Calories / float64(targets.Calories) * 100
		p.CaloriePercent = math.Max(0, math.Min(100, pct))
	}
	return p
}
