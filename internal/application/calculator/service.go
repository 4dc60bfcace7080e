// Package calculator orchestrates a single calculator session: validation,
// undo checkpoints, operation execution, bounded history, and observer
// notification.
package calculator

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/doeshing/calc-go/internal/domain"
	"github.com/doeshing/calc-go/internal/ports"
)

// Service is one calculator session. It owns the history and the undo/redo
// snapshots exclusively; a Service instance is not safe for concurrent use.
type Service struct {
	Config    domain.Config
	History   *domain.History
	Snapshots *domain.Snapshots
	Store     ports.HistoryStore
	Logger    ports.Logger

	observers []ports.CalculationObserver
}

// NewService wires a session with the standard observers: logging always,
// auto-save when enabled in the config.
func NewService(cfg domain.Config, store ports.HistoryStore, log ports.Logger) *Service {
	svc := &Service{
		Config:    cfg,
		History:   domain.NewHistory(cfg.MaxHistorySize),
		Snapshots: domain.NewSnapshots(),
		Store:     store,
		Logger:    log,
	}
	svc.RegisterObserver(&LoggingObserver{Logger: log})
	if cfg.AutoSave {
		svc.RegisterObserver(&AutoSaveObserver{
			History: svc.History,
			Store:   store,
			Path:    cfg.HistoryFile,
		})
	}
	return svc
}

// RegisterObserver appends an observer; notification order is registration
// order.
func (s *Service) RegisterObserver(o ports.CalculationObserver) {
	s.observers = append(s.observers, o)
}

// Perform validates the operands, checkpoints the history for undo, executes
// the named operation, rounds the result to the configured precision, appends
// the record, and notifies observers.
//
// The checkpoint is taken after validation but before operation lookup and
// execution, so a failing operation leaves the history untouched but does
// leave one unused entry on the undo stack. That matches the long-standing
// observable behavior and is pinned by a test.
func (s *Service) Perform(name string, operandA, operandB float64) (float64, error) {
	if err := domain.ValidateInRange(operandA, s.Config.MaxInputValue, "operand_a"); err != nil {
		return 0, err
	}
	if err := domain.ValidateInRange(operandB, s.Config.MaxInputValue, "operand_b"); err != nil {
		return 0, err
	}

	s.Snapshots.SaveState(s.History.Snapshot())

	kind, err := domain.ParseOpKind(name)
	if err != nil {
		return 0, err
	}
	calc := domain.NewCalculation(kind, operandA, operandB)
	if _, err := calc.Execute(); err != nil {
		return 0, err
	}
	calc.Result = roundTo(calc.Result, s.Config.Precision)

	s.History.Append(calc)
	s.notify(calc)
	return calc.Result, nil
}

// Undo restores the history to the most recent checkpoint.
func (s *Service) Undo() error {
	records, err := s.Snapshots.Undo(s.History.Snapshot())
	if err != nil {
		return err
	}
	s.History.Replace(records)
	s.Logger.Info("undo performed", map[string]interface{}{"count": s.History.Count()})
	return nil
}

// Redo re-applies the most recently undone state.
func (s *Service) Redo() error {
	records, err := s.Snapshots.Redo()
	if err != nil {
		return err
	}
	s.History.Replace(records)
	s.Logger.Info("redo performed", map[string]interface{}{"count": s.History.Count()})
	return nil
}

// ClearHistory empties the history and both snapshot stacks.
func (s *Service) ClearHistory() {
	s.History.Clear()
	s.Snapshots.Clear()
	s.Logger.Info("history cleared", nil)
}

// SaveHistory persists the current history. An empty path uses the configured
// history file. Saving an empty history fails with domain.ErrEmptyHistory
// before the store is touched, so no file is created or truncated.
func (s *Service) SaveHistory(path string) error {
	if s.History.Count() == 0 {
		return domain.ErrEmptyHistory
	}
	path = s.resolvePath(path)
	if err := s.Store.Save(path, s.History.Snapshot()); err != nil {
		return err
	}
	s.Logger.Info("history saved", map[string]interface{}{"path": path, "count": s.History.Count()})
	return nil
}

// LoadHistory replaces the history with the persisted records, truncated to
// the configured capacity. An empty path uses the configured history file.
func (s *Service) LoadHistory(path string) error {
	path = s.resolvePath(path)
	records, err := s.Store.Load(path)
	if err != nil {
		return err
	}
	s.History.Replace(records)
	s.Logger.Info("history loaded", map[string]interface{}{"path": path, "count": s.History.Count()})
	return nil
}

// FormatHistory renders the session history as a numbered listing.
func (s *Service) FormatHistory() string {
	records := s.History.Snapshot()
	if len(records) == 0 {
		return "No calculations in history"
	}
	var b strings.Builder
	b.WriteString("Calculation History:")
	for i, rec := range records {
		b.WriteString(fmt.Sprintf("\n%d. %s", i+1, rec))
		if !rec.Timestamp.IsZero() {
			b.WriteString("  (" + humanize.Time(rec.Timestamp) + ")")
		}
	}
	return b.String()
}

// CanUndo reports whether an undo checkpoint exists.
func (s *Service) CanUndo() bool { return s.Snapshots.CanUndo() }

// CanRedo reports whether an undone state can be re-applied.
func (s *Service) CanRedo() bool { return s.Snapshots.CanRedo() }

func (s *Service) resolvePath(path string) string {
	if path == "" {
		return s.Config.HistoryFile
	}
	return path
}

func (s *Service) notify(calc domain.Calculation) {
	for _, o := range s.observers {
		o.OnCalculation(calc)
	}
}

func roundTo(v float64, precision int) float64 {
	shift := math.Pow(10, float64(precision))
	return math.Round(v*shift) / shift
}
