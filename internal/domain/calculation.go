package domain

import (
	"fmt"
	"strconv"
	"time"
)

// Calculation is a single executed (or pending) calculation. It is a plain
// value type: assignment produces an independent copy, which is what makes
// history snapshots cheap and alias-free.
type Calculation struct {
	Op        OpKind
	OperandA  float64
	OperandB  float64
	Result    float64
	Executed  bool
	Timestamp time.Time
}

// NewCalculation builds a pending calculation stamped with the current time.
// The timestamp is never mutated afterwards.
func NewCalculation(op OpKind, a, b float64) Calculation {
	return Calculation{
		Op:        op,
		OperandA:  a,
		OperandB:  b,
		Timestamp: time.Now(),
	}
}

// Execute applies the operation and records the result. Once set, the result
// is only ever replaced by full reconstruction (e.g. loading from storage).
func (c *Calculation) Execute() (float64, error) {
	result, err := c.Op.Apply(c.OperandA, c.OperandB)
	if err != nil {
		return 0, err
	}
	c.Result = result
	c.Executed = true
	return result, nil
}

// String renders the calculation as "a <symbol> b = result".
func (c Calculation) String() string {
	if c.Executed {
		return fmt.Sprintf("%s %s %s = %s",
			formatNumber(c.OperandA), c.Op.Symbol(), formatNumber(c.OperandB), formatNumber(c.Result))
	}
	return fmt.Sprintf("%s %s %s", formatNumber(c.OperandA), c.Op.Symbol(), formatNumber(c.OperandB))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
