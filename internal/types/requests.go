package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/healthtrack/backend/internal/planner"
)

// FormValue is a numeric form field. The UI sends numbers as strings, but
// plain JSON numbers are accepted as well; both are kept as text so the
// planner parses them in one place.
type FormValue string

// UnmarshalJSON accepts a string, a number or null.
func (v *FormValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*v = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("form value must be a string or number: %w", err)
		}
		*v = FormValue(n.String())
		return nil
	}
}

func (v FormValue) String() string { return string(v) }

// BMIRequest is the body of POST /planner/bmi.
type BMIRequest struct {
	Weight FormValue `json:"weight"`
	Height FormValue `json:"height"`
}

// BodyMetricsRequest is the body of POST /planner/body-metrics.
type BodyMetricsRequest struct {
	Weight        FormValue `json:"weight"`
	Height        FormValue `json:"height"`
	Age           FormValue `json:"age"`
	Sex           string    `json:"sex"`
	ActivityLevel string    `json:"activity_level"`
}

// Parse validates the request. Any failure is planner.ErrInvalidInput.
func (r BodyMetricsRequest) Parse() (planner.Biometrics, planner.ActivityLevel, error) {
	b, err := planner.ParseBiometrics(r.Weight.String(), r.Height.String(), r.Age.String(), r.Sex)
	if err != nil {
		return planner.Biometrics{}, "", err
	}
	level, err := planner.ParseActivityLevel(r.ActivityLevel)
	if err != nil {
		return planner.Biometrics{}, "", err
	}
	return b, level, nil
}

// EnergyPlanRequest is the body of POST /planner/energy-plan.
type EnergyPlanRequest struct {
	BodyMetricsRequest
	Goal string `json:"goal"`
}

// Parse validates the request. Any failure is planner.ErrInvalidInput.
func (r EnergyPlanRequest) Parse() (planner.Biometrics, planner.ActivityLevel, planner.Goal, error) {
	b, level, err := r.BodyMetricsRequest.Parse()
	if err != nil {
		return planner.Biometrics{}, "", "", err
	}
	goal, err := planner.ParseGoal(r.Goal)
	if err != nil {
		return planner.Biometrics{}, "", "", err
	}
	return b, level, goal, nil
}

// MacroGramsRequest carries manually entered grams.
type MacroGramsRequest struct {
	Protein FormValue `json:"protein"`
	Carbs   FormValue `json:"carbs"`
	Fat     FormValue `json:"fat"`
}

// Grams parses the three amounts leniently.
func (r MacroGramsRequest) Grams() (protein, carbs, fat int) {
	return planner.ParseGrams(r.Protein.String()), planner.ParseGrams(r.Carbs.String()), planner.ParseGrams(r.Fat.String())
}

// ManualPlanRequest is the body of POST /planner/macros/validate.
type ManualPlanRequest struct {
	MacroGramsRequest
	Calories FormValue `json:"calories"`
}

// Plan returns the manual plan with the stated calories applied.
func (r ManualPlanRequest) Plan() planner.ManualPlan {
	p, c, f := r.Grams()
	return planner.NewManualPlan(p, c, f).SetCalories(planner.ParseGrams(r.Calories.String()))
}

// NutritionSummaryRequest is the body of POST /nutrition/summary.
type NutritionSummaryRequest struct {
	Items   []planner.FoodPortion `json:"items"`
	Targets *planner.DailyTargets `json:"targets,omitempty"`
}

// Validate rejects negative explicit targets.
func (r NutritionSummaryRequest) Validate() error {
	if r.Targets == nil {
		return nil
	}
	return r.Targets.Validate()
}

// SaveGoalRequest is the body of PUT /goals. Manual goals read the gram
// fields; planner goals read the biometric fields and goal.
type SaveGoalRequest struct {
	Source string `json:"source" binding:"required,oneof=manual planner"`
	MacroGramsRequest
	EnergyPlanRequest
}

// CaloriesResponse is returned by POST /planner/macros/derive.
type CaloriesResponse struct {
	Calories int            `json:"calories"`
	Macros   planner.Macros `json:"macros"`
}
