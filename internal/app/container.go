package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/doeshing/calc-go/internal/application/calculator"
	"github.com/doeshing/calc-go/internal/domain"
	configinfra "github.com/doeshing/calc-go/internal/infrastructure/config"
	"github.com/doeshing/calc-go/internal/infrastructure/history"
	"github.com/doeshing/calc-go/internal/pkg/logger"
	"github.com/doeshing/calc-go/internal/ports"
)

// Container wires the calculator session with its infrastructure adapters.
type Container struct {
	Config       domain.Config
	Calculator   *calculator.Service
	HistoryStore ports.HistoryStore
	Logger       *logger.ZapLogger
	SessionID    string
}

// BuildContainer constructs the dependency graph for one session.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := configinfra.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Verbose = true
	}

	sessionID := uuid.NewString()
	log, err := logger.New(cfg.LogFile, cfg.Verbose, sessionID)
	if err != nil {
		// The calculator still works without a log file.
		log = logger.NewNop()
	}

	store := newStore(cfg)
	svc := calculator.NewService(cfg, store, log)
	log.Info("calculator initialized", map[string]interface{}{
		"backend":      cfg.HistoryBackend,
		"history_file": cfg.HistoryFile,
		"auto_save":    cfg.AutoSave,
	})

	return &Container{
		Config:       cfg,
		Calculator:   svc,
		HistoryStore: store,
		Logger:       log,
		SessionID:    sessionID,
	}, nil
}

// Close flushes the logger.
func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Sync()
	}
}

func newStore(cfg domain.Config) ports.HistoryStore {
	if cfg.HistoryBackend == domain.BackendSQLite {
		return history.NewSQLiteStore()
	}
	return history.NewCSVStore()
}
