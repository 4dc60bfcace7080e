package domain_test

import (
	"errors"
	"math"
	"testing"

	"github.com/doeshing/calc-go/internal/domain"
)

func TestParseOpKind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.OpKind
		wantErr error
	}{
		{name: "lowercase", input: "add", want: domain.OpAdd},
		{name: "mixed case", input: "DiViDe", want: domain.OpDivide},
		{name: "surrounding whitespace", input: "  power ", want: domain.OpPower},
		{name: "underscore name", input: "int_divide", want: domain.OpIntDivide},
		{name: "unknown", input: "sqrt", wantErr: domain.ErrUnknownOperation},
		{name: "empty", input: "", wantErr: domain.ErrUnknownOperation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseOpKind(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseOpKind(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOpKind(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("ParseOpKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		op      domain.OpKind
		a, b    float64
		want    float64
		wantErr error
	}{
		{name: "add", op: domain.OpAdd, a: 5, b: 3, want: 8},
		{name: "add negatives", op: domain.OpAdd, a: -5, b: -3, want: -8},
		{name: "subtract", op: domain.OpSubtract, a: 5, b: 3, want: 2},
		{name: "multiply", op: domain.OpMultiply, a: 4, b: 2.5, want: 10},
		{name: "divide", op: domain.OpDivide, a: 10, b: 4, want: 2.5},
		{name: "divide by zero", op: domain.OpDivide, a: 10, b: 0, wantErr: domain.ErrDivisionByZero},
		{name: "power", op: domain.OpPower, a: 2, b: 10, want: 1024},
		{name: "power negative exponent", op: domain.OpPower, a: 2, b: -2, want: 0.25},
		{name: "power fractional of negative base", op: domain.OpPower, a: -2, b: 0.5, wantErr: domain.ErrOperationFailed},
		{name: "power overflow", op: domain.OpPower, a: 10, b: 10_000, wantErr: domain.ErrOperationFailed},
		{name: "root square", op: domain.OpRoot, a: 9, b: 2, want: 3},
		{name: "root zeroth", op: domain.OpRoot, a: 9, b: 0, wantErr: domain.ErrInvalidRoot},
		{name: "root even of negative", op: domain.OpRoot, a: -9, b: 2, wantErr: domain.ErrInvalidRoot},
		{name: "root negative even order", op: domain.OpRoot, a: -9, b: -4, wantErr: domain.ErrInvalidRoot},
		{name: "root odd of negative", op: domain.OpRoot, a: -8, b: 3, wantErr: domain.ErrOperationFailed},
		{name: "modulus", op: domain.OpModulus, a: 10, b: 3, want: 1},
		{name: "modulus negative dividend", op: domain.OpModulus, a: -7, b: 3, want: 2},
		{name: "modulus negative divisor", op: domain.OpModulus, a: 7, b: -3, want: -2},
		{name: "modulus zero divisor", op: domain.OpModulus, a: 7, b: 0, wantErr: domain.ErrDivisionByZero},
		{name: "int divide", op: domain.OpIntDivide, a: 7, b: 2, want: 3},
		{name: "int divide rounds toward negative infinity", op: domain.OpIntDivide, a: -7, b: 2, want: -4},
		{name: "int divide by zero", op: domain.OpIntDivide, a: 7, b: 0, wantErr: domain.ErrDivisionByZero},
		{name: "percent", op: domain.OpPercent, a: 25, b: 200, want: 12.5},
		{name: "percent zero denominator", op: domain.OpPercent, a: 25, b: 0, wantErr: domain.ErrDivisionByZero},
		{name: "abs diff", op: domain.OpAbsDiff, a: 3, b: 10, want: 7},
		{name: "abs diff equal", op: domain.OpAbsDiff, a: 4, b: 4, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op.Apply(tt.a, tt.b)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Apply(%g, %g) error = %v, want %v", tt.a, tt.b, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Apply(%g, %g) error = %v", tt.a, tt.b, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("Apply(%g, %g) = %g, want %g", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSymbols(t *testing.T) {
	want := map[domain.OpKind]string{
		domain.OpAdd:       "+",
		domain.OpSubtract:  "-",
		domain.OpMultiply:  "*",
		domain.OpDivide:    "/",
		domain.OpPower:     "^",
		domain.OpRoot:      "√",
		domain.OpModulus:   "%",
		domain.OpIntDivide: "//",
		domain.OpPercent:   "%of",
		domain.OpAbsDiff:   "|diff|",
	}
	for _, kind := range domain.OpKinds() {
		if got := kind.Symbol(); got != want[kind] {
			t.Errorf("%s.Symbol() = %q, want %q", kind, got, want[kind])
		}
	}
}

func TestCalculationExecute(t *testing.T) {
	calc := domain.NewCalculation(domain.OpAdd, 5, 3)
	if calc.Executed {
		t.Fatal("new calculation should not be marked executed")
	}
	result, err := calc.Execute()
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result != 8 || calc.Result != 8 || !calc.Executed {
		t.Fatalf("Execute() = %g, record = %+v", result, calc)
	}
	if got := calc.String(); got != "5 + 3 = 8" {
		t.Fatalf("String() = %q", got)
	}
}

func TestCalculationExecuteFailureLeavesRecordPending(t *testing.T) {
	calc := domain.NewCalculation(domain.OpDivide, 1, 0)
	if _, err := calc.Execute(); !errors.Is(err, domain.ErrDivisionByZero) {
		t.Fatalf("Execute() error = %v, want ErrDivisionByZero", err)
	}
	if calc.Executed {
		t.Fatal("failed calculation must not be marked executed")
	}
	if got := calc.String(); got != "1 / 0" {
		t.Fatalf("String() = %q", got)
	}
}
