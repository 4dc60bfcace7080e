package domain

import (
	"fmt"
	"math"
	"strings"
)

// OpKind identifies one of the ten binary arithmetic operations. The string
// value is the registry name used in command input and persisted history.
type OpKind string

const (
	OpAdd       OpKind = "add"
	OpSubtract  OpKind = "subtract"
	OpMultiply  OpKind = "multiply"
	OpDivide    OpKind = "divide"
	OpPower     OpKind = "power"
	OpRoot      OpKind = "root"
	OpModulus   OpKind = "modulus"
	OpIntDivide OpKind = "int_divide"
	OpPercent   OpKind = "percent"
	OpAbsDiff   OpKind = "abs_diff"
)

// opKinds lists every operation in display order.
var opKinds = []OpKind{
	OpAdd, OpSubtract, OpMultiply, OpDivide, OpPower,
	OpRoot, OpModulus, OpIntDivide, OpPercent, OpAbsDiff,
}

// OpKinds returns all operation names in display order.
func OpKinds() []OpKind {
	out := make([]OpKind, len(opKinds))
	copy(out, opKinds)
	return out
}

// ParseOpKind resolves a case-insensitive operation name.
func ParseOpKind(name string) (OpKind, error) {
	kind := OpKind(strings.ToLower(strings.TrimSpace(name)))
	for _, k := range opKinds {
		if k == kind {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownOperation, name)
}

// Symbol returns the display symbol for the operation.
func (k OpKind) Symbol() string {
	switch k {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	case OpPower:
		return "^"
	case OpRoot:
		return "√"
	case OpModulus:
		return "%"
	case OpIntDivide:
		return "//"
	case OpPercent:
		return "%of"
	case OpAbsDiff:
		return "|diff|"
	default:
		return "?"
	}
}

// Apply executes the operation on two operands. Every variant is pure; the
// only side channel is the returned error.
func (k OpKind) Apply(a, b float64) (float64, error) {
	switch k {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	case OpDivide:
		if b == 0 {
			return 0, fmt.Errorf("%w: cannot divide by zero", ErrDivisionByZero)
		}
		return a / b, nil
	case OpPower:
		return checkFinite(math.Pow(a, b), "power")
	case OpRoot:
		if b == 0 {
			return 0, fmt.Errorf("%w: cannot calculate 0th root", ErrInvalidRoot)
		}
		if a < 0 && isEven(b) {
			return 0, fmt.Errorf("%w: cannot calculate even root of negative number", ErrInvalidRoot)
		}
		return checkFinite(math.Pow(a, 1/b), "root")
	case OpModulus:
		if b == 0 {
			return 0, fmt.Errorf("%w: cannot perform modulus with zero divisor", ErrDivisionByZero)
		}
		return flooredMod(a, b), nil
	case OpIntDivide:
		if b == 0 {
			return 0, fmt.Errorf("%w: cannot divide by zero", ErrDivisionByZero)
		}
		return math.Floor(a / b), nil
	case OpPercent:
		if b == 0 {
			return 0, fmt.Errorf("%w: cannot calculate percentage with zero denominator", ErrDivisionByZero)
		}
		return (a / b) * 100, nil
	case OpAbsDiff:
		return math.Abs(a - b), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownOperation, string(k))
	}
}

// flooredMod computes a modulo b with the result taking the divisor's sign,
// the floored-division definition rather than the truncated one of math.Mod.
func flooredMod(a, b float64) float64 {
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

// isEven reports whether b is an even integer.
func isEven(b float64) bool {
	return b == math.Trunc(b) && math.Mod(b, 2) == 0
}

// checkFinite maps overflow and domain errors (Inf, NaN) to ErrOperationFailed.
func checkFinite(v float64, op string) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s operation produced a non-finite result", ErrOperationFailed, op)
	}
	return v, nil
}
