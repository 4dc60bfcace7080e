package calculator

import (
	"github.com/doeshing/calc-go/internal/domain"
	"github.com/doeshing/calc-go/internal/ports"
)

// LoggingObserver records every calculation through the injected logger.
// Logging must never break the calculation path, so a nil logger is simply
// ignored.
type LoggingObserver struct {
	Logger ports.Logger
}

// OnCalculation implements ports.CalculationObserver.
func (o *LoggingObserver) OnCalculation(calc domain.Calculation) {
	if o.Logger == nil {
		return
	}
	o.Logger.Info("calculation", map[string]interface{}{
		"operation": string(calc.Op),
		"operand_a": calc.OperandA,
		"operand_b": calc.OperandB,
		"result":    calc.Result,
	})
}

// AutoSaveObserver persists the history after every calculation. Auto-save is
// best-effort: the save error is discarded on purpose, manual saves surface
// errors to the caller.
type AutoSaveObserver struct {
	History *domain.History
	Store   ports.HistoryStore
	Path    string
}

// OnCalculation implements ports.CalculationObserver.
func (o *AutoSaveObserver) OnCalculation(domain.Calculation) {
	if o.History.Count() == 0 {
		return
	}
	_ = o.Store.Save(o.Path, o.History.Snapshot())
}

var (
	_ ports.CalculationObserver = (*LoggingObserver)(nil)
	_ ports.CalculationObserver = (*AutoSaveObserver)(nil)
)
