package planner

// BMI category labels.
const (
	Underweight  = "Underweight"
	NormalWeight = "Normal weight"
	Overweight   = "Overweight"
	Obesity      = "Obesity"
)

// BMIResult is a body mass index in kg/m² and its category label.
type BMIResult struct {
	BMI      float64 `json:"bmi" yaml:"bmi"`
	Category string  `json:"category" yaml:"category"`
}

// CategorizeBMI maps a BMI onto half-open ranges: below 18.5, [18.5, 25),
// [25, 30) and 30 or more.
func CategorizeBMI(bmi float64) string {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return NormalWeight
	case bmi < 30:
		return Overweight
	default:
		return Obesity
	}
}

// ComputeBMI returns the BMI for a weight in pounds and a height in inches.
func ComputeBMI(weightLb, heightIn float64) (BMIResult, error) {
	if !positive(weightLb) || !positive(heightIn) {
		return BMIResult{}, ErrInvalidInput
	}
	heightM := InchesToMeters(heightIn)
	bmi := PoundsToKilograms(weightLb) / (heightM * heightM)
	return BMIResult{BMI: bmi, Category: CategorizeBMI(bmi)}, nil
}
