package planner

const (
	kilogramsPerPound  = 0.453592
	metersPerInch      = 0.0254
	centimetersPerInch = 2.54
)

// PoundsToKilograms converts a body weight in pounds to kilograms.
func PoundsToKilograms(lb float64) float64 {
	return lb * kilogramsPerPound
}

// InchesToMeters converts a height in inches to meters.
func InchesToMeters(in float64) float64 {
	return in * metersPerInch
}

// InchesToCentimeters converts a height in inches to centimeters.
func InchesToCentimeters(in float64) float64 {
	return in * centimetersPerInch
}
