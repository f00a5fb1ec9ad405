package planner

import "strings"

// Sex selects the constant used by the Mifflin-St Jeor equation.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// Valid reports whether s is one of the supported values.
func (s Sex) Valid() bool {
	return s == Male || s == Female
}

// ActivityLevel describes how active a person is on a typical week.
type ActivityLevel string

const (
	Sedentary  ActivityLevel = "sedentary"
	Light      ActivityLevel = "light"
	Moderate   ActivityLevel = "moderate"
	Active     ActivityLevel = "active"
	VeryActive ActivityLevel = "very_active"
)

// activityMultipliers scales BMR into TDEE.
var activityMultipliers = map[ActivityLevel]float64{
	Sedentary:  1.2,
	Light:      1.375,
	Moderate:   1.55,
	Active:     1.725,
	VeryActive: 1.9,
}

// Multiplier returns the TDEE multiplier for the level.
func (a ActivityLevel) Multiplier() (float64, bool) {
	m, ok := activityMultipliers[a]
	return m, ok
}

// Valid reports whether a is one of the five supported levels.
func (a ActivityLevel) Valid() bool {
	_, ok := activityMultipliers[a]
	return ok
}

// ActivityLevels lists the supported levels from least to most active.
func ActivityLevels() []ActivityLevel {
	return []ActivityLevel{Sedentary, Light, Moderate, Active, VeryActive}
}

// Goal is the direction a person wants their body weight to move.
type Goal string

const (
	Cut      Goal = "cut"
	Maintain Goal = "maintain"
	Bulk     Goal = "bulk"
)

type goalProfile struct {
	calorieFactor float64
	proteinPerLb  float64
	fatPerLb      float64
}

var goalProfiles = map[Goal]goalProfile{
	Cut:      {calorieFactor: 0.85, proteinPerLb: 1.2, fatPerLb: 0.4},
	Maintain: {calorieFactor: 1.0, proteinPerLb: 1.0, fatPerLb: 0.4},
	Bulk:     {calorieFactor: 1.15, proteinPerLb: 1.0, fatPerLb: 0.5},
}

// Valid reports whether g is cut, maintain or bulk.
func (g Goal) Valid() bool {
	_, ok := goalProfiles[g]
	return ok
}

// CalorieFactor returns the multiplier applied to TDEE for the goal.
func (g Goal) CalorieFactor() (float64, bool) {
	p, ok := goalProfiles[g]
	return p.calorieFactor, ok
}

// Goals lists the supported goals.
func Goals() []Goal {
	return []Goal{Cut, Maintain, Bulk}
}

// ParseSex accepts "male" or "female" in any case.
func ParseSex(s string) (Sex, error) {
	sex := Sex(strings.ToLower(strings.TrimSpace(s)))
	if !sex.Valid() {
		return "", ErrInvalidInput
	}
	return sex, nil
}

// ParseActivityLevel accepts one of the five level names in any case.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	level := ActivityLevel(strings.ToLower(strings.TrimSpace(s)))
	if !level.Valid() {
		return "", ErrInvalidInput
	}
	return level, nil
}

// ParseGoal accepts "cut", "maintain" or "bulk" in any case.
func ParseGoal(s string) (Goal, error) {
	goal := Goal(strings.ToLower(strings.TrimSpace(s)))
	if !goal.Valid() {
		return "", ErrInvalidInput
	}
	return goal, nil
}
