package cli

import (
	"fmt"
	"strings"

	"github.com/doeshing/calc-go/internal/domain"
)

// helpText renders the REPL command reference.
func helpText() string {
	var b strings.Builder
	b.WriteString("\nAvailable Commands:\n")
	b.WriteString("==================\n")
	b.WriteString("Arithmetic Operations:\n")
	for _, kind := range domain.OpKinds() {
		b.WriteString(fmt.Sprintf("  %-18s- %s  (symbol: %s)\n",
			string(kind)+" <a> <b>", opDescription(kind), kind.Symbol()))
	}
	b.WriteString("\nHistory Commands:\n")
	b.WriteString("  history           - Show calculation history\n")
	b.WriteString("  clear             - Clear calculation history\n")
	b.WriteString("  undo              - Undo last calculation\n")
	b.WriteString("  redo              - Redo last undone calculation\n")
	b.WriteString("  save [file]       - Save history to file\n")
	b.WriteString("  load [file]       - Load history from file\n")
	b.WriteString("\nOther Commands:\n")
	b.WriteString("  help              - Show this help message\n")
	b.WriteString("  exit              - Exit the calculator\n")
	return b.String()
}

func opDescription(kind domain.OpKind) string {
	switch kind {
	case domain.OpAdd:
		return "Add two numbers"
	case domain.OpSubtract:
		return "Subtract b from a"
	case domain.OpMultiply:
		return "Multiply two numbers"
	case domain.OpDivide:
		return "Divide a by b"
	case domain.OpPower:
		return "Raise a to the power of b"
	case domain.OpRoot:
		return "Calculate the bth root of a"
	case domain.OpModulus:
		return "Calculate a modulo b"
	case domain.OpIntDivide:
		return "Integer division of a by b"
	case domain.OpPercent:
		return "Calculate percentage (a/b * 100)"
	case domain.OpAbsDiff:
		return "Absolute difference between a and b"
	default:
		return ""
	}
}
