// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The application core depends on these contracts only; concrete adapters
// live in the infrastructure layer (CSV/SQLite stores, the env/YAML config
// loader, the zap logger).
package ports

import (
	"context"

	"github.com/doeshing/calc-go/internal/domain"
)

// ConfigProvider loads the calculator configuration from persistent storage
// and the environment.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// HistoryStore persists a full history snapshot and loads it back.
// Implementations replace the target's contents on Save; Load is lenient and
// skips rows it cannot parse. A missing target reports domain.ErrFileNotFound,
// other I/O failures domain.ErrPersist.
type HistoryStore interface {
	Save(path string, records []domain.Calculation) error
	Load(path string) ([]domain.Calculation, error)
}

// CalculationObserver is notified synchronously after every successfully
// completed and stored calculation, in registration order. Implementations
// must not fail the calculation path.
type CalculationObserver interface {
	OnCalculation(domain.Calculation)
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
