package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/doeshing/calc-go/internal/app"
	"github.com/doeshing/calc-go/internal/application/calculator"
	"github.com/doeshing/calc-go/internal/domain"
)

// RunREPL drives the interactive read-eval-print loop until `exit` or EOF.
// Errors are printed and never end the loop.
func RunREPL(container *app.Container, in io.Reader, out io.Writer) error {
	svc := container.Calculator
	log := container.Logger
	log.Info("repl started", nil)

	fmt.Fprintln(out, "Calculator REPL - Type 'help' for available commands")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		// Only the command word is case-folded; path arguments keep their case.
		parts := strings.Fields(line)
		command := strings.ToLower(parts[0])

		switch command {
		case "exit", "quit":
			fmt.Fprintln(out, "Goodbye!")
			log.Info("repl exiting", nil)
			return scanner.Err()

		case "help":
			fmt.Fprint(out, helpText())

		case "history":
			fmt.Fprintln(out, svc.FormatHistory())

		case "clear":
			svc.ClearHistory()
			fmt.Fprintln(out, "History cleared")

		case "undo":
			if err := svc.Undo(); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				continue
			}
			fmt.Fprintln(out, "Undo successful")
			fmt.Fprintln(out, svc.FormatHistory())

		case "redo":
			if err := svc.Redo(); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				continue
			}
			fmt.Fprintln(out, "Redo successful")
			fmt.Fprintln(out, svc.FormatHistory())

		case "save":
			if err := svc.SaveHistory(pathArg(parts)); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "History saved to %s\n", savePath(svc, parts))

		case "load":
			if err := svc.LoadHistory(pathArg(parts)); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "History loaded from %s\n", savePath(svc, parts))

		default:
			if !isOperation(command) {
				fmt.Fprintf(out, "Unknown command: %s\n", command)
				fmt.Fprintln(out, "Type 'help' for available commands")
				continue
			}
			if len(parts) != 3 {
				fmt.Fprintf(out, "Error: %s requires exactly 2 numbers\n", command)
				fmt.Fprintf(out, "Usage: %s <number1> <number2>\n", command)
				continue
			}
			result, err := Calculate(svc, command, parts[1], parts[2])
			if err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				log.Error("calculation failed", err, map[string]interface{}{"input": line})
				continue
			}
			fmt.Fprintln(out, "Result: "+result)
		}
	}
	return scanner.Err()
}

// Calculate parses the operand strings and performs one calculation,
// returning the formatted result.
func Calculate(svc *calculator.Service, op, rawA, rawB string) (string, error) {
	a, err := domain.ParseNumber(rawA, "operand_a")
	if err != nil {
		return "", err
	}
	b, err := domain.ParseNumber(rawB, "operand_b")
	if err != nil {
		return "", err
	}
	result, err := svc.Perform(op, a, b)
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(result, 'f', -1, 64), nil
}

func isOperation(name string) bool {
	_, err := domain.ParseOpKind(name)
	return err == nil
}

func pathArg(parts []string) string {
	if len(parts) > 1 {
		return parts[1]
	}
	return ""
}

func savePath(svc *calculator.Service, parts []string) string {
	if p := pathArg(parts); p != "" {
		return p
	}
	return svc.Config.HistoryFile
}
