package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseNumber converts raw user input into a finite float64. param names the
// operand for the error message.
func ParseNumber(raw, param string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s must be a number, got %q", ErrValidation, param, raw)
	}
	return v, nil
}

// ValidateInRange checks that v is finite and that |v| does not exceed the
// configured maximum operand magnitude.
func ValidateInRange(v, maxValue float64, param string) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be a finite number", ErrValidation, param)
	}
	if math.Abs(v) > maxValue {
		return fmt.Errorf("%w: %s exceeds maximum allowed value of %g", ErrValidation, param, maxValue)
	}
	return nil
}
