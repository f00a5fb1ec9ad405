package planner

import "errors"

// InvalidInputMessage is shown to the user for every validation failure.
// Failures are never attributed to a single field.
const InvalidInputMessage = "Please enter valid information."

// ErrInvalidInput is returned when a biometric value is missing, not a
// number or not positive, or when an enum selection is unknown.
var ErrInvalidInput = errors.New("invalid input")
