// Package logger provides the zap-backed implementation of ports.Logger.
// One instance is constructed in the container and injected everywhere;
// there is no package-global logger.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger writes structured JSON log entries to the configured log file,
// and to stderr as well when verbose.
type ZapLogger struct {
	l *zap.Logger
}

// New builds a ZapLogger. sessionID is stamped on every entry so one
// calculator session can be traced through the log.
func New(logFile string, verbose bool, sessionID string) (*ZapLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{logFile}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		cfg.OutputPaths = append(cfg.OutputPaths, "stderr")
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{l: l.With(zap.String("session_id", sessionID))}, nil
}

// NewNop returns a logger that discards everything. Used in tests and as a
// fallback when the log file cannot be opened.
func NewNop() *ZapLogger {
	return &ZapLogger{l: zap.NewNop()}
}

// Sync flushes buffered entries. Safe to call on shutdown.
func (z *ZapLogger) Sync() {
	_ = z.l.Sync()
}

func (z *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	z.l.Debug(msg, toZapFields(fields)...)
}

func (z *ZapLogger) Info(msg string, fields map[string]interface{}) {
	z.l.Info(msg, toZapFields(fields)...)
}

func (z *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	z.l.Warn(msg, toZapFields(fields)...)
}

func (z *ZapLogger) Error(msg string, err error, fields map[string]interface{}) {
	zf := toZapFields(fields)
	if err != nil {
		zf = append(zf, zap.Error(err))
	}
	z.l.Error(msg, zf...)
}

func toZapFields(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}
