package planner

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Biometrics is the per-calculation body data supplied by the user.
// Weight is in pounds, height in inches and age in years.
type Biometrics struct {
	WeightLb float64 `json:"weight_lb" yaml:"weight_lb"`
	HeightIn float64 `json:"height_in" yaml:"height_in"`
	Age      float64 `json:"age" yaml:"age"`
	Sex      Sex     `json:"sex" yaml:"sex"`
}

// Validate checks that every measurement is a finite positive number and
// that the sex is known.
func (b Biometrics) Validate() error {
	if !positive(b.WeightLb) || !positive(b.HeightIn) || !positive(b.Age) || !b.Sex.Valid() {
		return ErrInvalidInput
	}
	return nil
}

// ParseMeasurement parses a numeric form value that must be greater than zero.
func ParseMeasurement(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !positive(v) {
		return 0, ErrInvalidInput
	}
	return v, nil
}

// ParseBiometrics converts raw form values into Biometrics. Any failure
// yields ErrInvalidInput without saying which field was wrong.
func ParseBiometrics(weight, height, age, sex string) (Biometrics, error) {
	w, err := ParseMeasurement(weight)
	if err != nil {
		return Biometrics{}, err
	}
	h, err := ParseMeasurement(height)
	if err != nil {
		return Biometrics{}, err
	}
	a, err := ParseMeasurement(age)
	if err != nil {
		return Biometrics{}, err
	}
	s, err := ParseSex(sex)
	if err != nil {
		return Biometrics{}, err
	}
	return Biometrics{WeightLb: w, HeightIn: h, Age: a, Sex: s}, nil
}

// ParseGrams reads a manually entered gram or calorie amount from its
// leading decimal integer: "12abc" is 12, "150.9" is 150 and "1e3" is 1.
// Values without leading digits count as zero and magnitudes are capped at
// MaxGrams, so the manual form never fails to parse.
func ParseGrams(s string) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n, digits := 0, 0
	for ; digits < len(s) && s[digits] >= '0' && s[digits] <= '9'; digits++ {
		if n <= MaxGrams {
			n = n*10 + int(s[digits]-'0')
		}
	}
	if digits == 0 {
		return 0
	}

	n = min(n, MaxGrams)
	if neg {
		return -n
	}
	return n
}

func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
