package planner

// BodyMetrics is the combined output of the BMI and caloric calculator.
type BodyMetrics struct {
	BMIResult `yaml:",inline"`
	BMR       float64 `json:"bmr" yaml:"bmr"`
	TDEE      float64 `json:"tdee" yaml:"tdee"`
}

// EnergyPlan is the goal-based calorie and macro plan.
//
// TargetCalories is the unrounded goal-adjusted TDEE. TotalCalories is
// recomputed from the rounded macro grams and is the figure shown to the
// user, so it can differ from TargetCalories by a few kcal.
type EnergyPlan struct {
	BMR            float64 `json:"bmr" yaml:"bmr"`
	TDEE           float64 `json:"tdee" yaml:"tdee"`
	TargetCalories float64 `json:"target_calories" yaml:"target_calories"`
	TotalCalories  int     `json:"total_calories" yaml:"total_calories"`
	Macros         Macros  `json:"macros" yaml:"macros"`
}

// ComputeBMR estimates basal metabolic rate in kcal/day with the
// Mifflin-St Jeor equation. It does not validate its input.
func ComputeBMR(b Biometrics) float64 {
	bmr := 10*PoundsToKilograms(b.WeightLb) + 6.25*InchesToCentimeters(b.HeightIn) - 5*b.Age
	if b.Sex == Male {
		return bmr + 5
	}
	return bmr - 161
}

// ComputeTDEE scales a BMR by the activity multiplier.
func ComputeTDEE(bmr float64, level ActivityLevel) (float64, error) {
	m, ok := level.Multiplier()
	if !ok {
		return 0, ErrInvalidInput
	}
	return bmr * m, nil
}

// TargetCalories adjusts TDEE for a goal.
func TargetCalories(tdee float64, goal Goal) (float64, error) {
	f, ok := goal.CalorieFactor()
	if !ok {
		return 0, ErrInvalidInput
	}
	return tdee * f, nil
}

// ComputeBodyMetrics runs BMI, BMR and TDEE for one person.
func ComputeBodyMetrics(b Biometrics, level ActivityLevel) (BodyMetrics, error) {
	if err := b.Validate(); err != nil {
		return BodyMetrics{}, err
	}
	bmi, err := ComputeBMI(b.WeightLb, b.HeightIn)
	if err != nil {
		return BodyMetrics{}, err
	}
	bmr := ComputeBMR(b)
	tdee, err := ComputeTDEE(bmr, level)
	if err != nil {
		return BodyMetrics{}, err
	}
	return BodyMetrics{BMIResult: bmi, BMR: bmr, TDEE: tdee}, nil
}

// ComputeEnergyPlan converts biometrics, activity and goal into a calorie
// target and macro grams.
func ComputeEnergyPlan(b Biometrics, level ActivityLevel, goal Goal) (EnergyPlan, error) {
	if err := b.Validate(); err != nil {
		return EnergyPlan{}, err
	}
	bmr := ComputeBMR(b)
	tdee, err := ComputeTDEE(bmr, level)
	if err != nil {
		return EnergyPlan{}, err
	}
	target, err := TargetCalories(tdee, goal)
	if err != nil {
		return EnergyPlan{}, err
	}
	macros, total, err := AllocateMacros(target, goal, b.WeightLb)
	if err != nil {
		return EnergyPlan{}, err
	}
	return EnergyPlan{
		BMR:            bmr,
		TDEE:           tdee,
		TargetCalories: target,
		TotalCalories:  total,
		Macros:         macros,
	}, nil
}
