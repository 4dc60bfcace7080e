// Package config loads calculator configuration from ~/.calc/config.yaml
// with CALC_* environment variables taking precedence over file values.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/calc-go/internal/domain"
	"github.com/doeshing/calc-go/internal/pkg/filesystem"
	"github.com/doeshing/calc-go/internal/ports"
)

// FileLoader loads YAML configuration from ~/.calc/config.yaml (overridable
// via CALC_CONFIG), then applies environment overrides.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader. An empty path means the default location.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return domain.Config{}, err
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := writeDefault(path, cfg); err != nil {
			return domain.Config{}, err
		}
	case err != nil:
		return domain.Config{}, err
	default:
		// Unmarshal over the defaults so absent keys keep their default value.
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.Config{}, fmt.Errorf("%w: %v", domain.ErrConfiguration, err)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return domain.Config{}, err
	}
	hydratePaths(&cfg)

	if err := os.MkdirAll(cfg.LogDir, domain.DirectoryPermissions); err != nil {
		return domain.Config{}, err
	}
	if err := os.MkdirAll(cfg.HistoryDir, domain.DirectoryPermissions); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

// DefaultConfig returns the configuration used when no file or environment
// overrides are present.
func DefaultConfig() domain.Config {
	base := filepath.Join(filesystem.UserHomeDir(), ".calc")
	return domain.Config{
		LogDir:         filepath.Join(base, "logs"),
		HistoryDir:     filepath.Join(base, "history"),
		HistoryBackend: domain.BackendCSV,
		MaxHistorySize: domain.DefaultMaxHistorySize,
		AutoSave:       true,
		Precision:      domain.DefaultPrecision,
		MaxInputValue:  domain.DefaultMaxInputValue,
	}
}

// HydratedDefaultConfig returns DefaultConfig with the derived file paths
// filled in. This is the effective configuration of an untouched setup.
func HydratedDefaultConfig() domain.Config {
	cfg := DefaultConfig()
	hydratePaths(&cfg)
	return cfg
}

// Path returns the configuration file location the loader reads from.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("CALC_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".calc", "config.yaml")
}

func writeDefault(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.ConfigFilePermissions)
}

// applyEnvOverrides replaces file values with CALC_* environment variables.
// A set-but-malformed value is a configuration error, not a silent default.
func applyEnvOverrides(cfg *domain.Config) error {
	if v := os.Getenv("CALC_LOG_DIR"); v != "" {
		cfg.LogDir = expandPath(v)
	}
	if v := os.Getenv("CALC_LOG_FILE"); v != "" {
		cfg.LogFile = expandPath(v)
	}
	if v := os.Getenv("CALC_HISTORY_DIR"); v != "" {
		cfg.HistoryDir = expandPath(v)
	}
	if v := os.Getenv("CALC_HISTORY_FILE"); v != "" {
		cfg.HistoryFile = expandPath(v)
	}
	if v := os.Getenv("CALC_HISTORY_BACKEND"); v != "" {
		backend := strings.ToLower(v)
		if backend != domain.BackendCSV && backend != domain.BackendSQLite {
			return fmt.Errorf("%w: unknown history backend %q", domain.ErrConfiguration, v)
		}
		cfg.HistoryBackend = backend
	}
	if err := envInt("CALC_MAX_HISTORY_SIZE", &cfg.MaxHistorySize); err != nil {
		return err
	}
	if err := envInt("CALC_PRECISION", &cfg.Precision); err != nil {
		return err
	}
	if err := envFloat("CALC_MAX_INPUT_VALUE", &cfg.MaxInputValue); err != nil {
		return err
	}
	if err := envBool("CALC_AUTO_SAVE", &cfg.AutoSave); err != nil {
		return err
	}
	if err := envBool("CALC_VERBOSE", &cfg.Verbose); err != nil {
		return err
	}
	return nil
}

// hydratePaths fills in the file locations derived from the directories.
func hydratePaths(cfg *domain.Config) {
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.LogDir, "calculator.log")
	}
	if cfg.HistoryFile == "" {
		name := "calculation_history.csv"
		if cfg.HistoryBackend == domain.BackendSQLite {
			name = "calculation_history.db"
		}
		cfg.HistoryFile = filepath.Join(cfg.HistoryDir, name)
	}
	if cfg.MaxHistorySize <= 0 {
		cfg.MaxHistorySize = domain.DefaultMaxHistorySize
	}
}

func envInt(key string, dst *int) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%w: invalid integer value for %s: %q", domain.ErrConfiguration, key, raw)
	}
	*dst = v
	return nil
}

func envFloat(key string, dst *float64) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("%w: invalid float value for %s: %q", domain.ErrConfiguration, key, raw)
	}
	*dst = v
	return nil
}

func envBool(key string, dst *bool) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	switch strings.ToLower(raw) {
	case "true", "1", "yes", "on":
		*dst = true
	case "false", "0", "no", "off":
		*dst = false
	default:
		return fmt.Errorf("%w: invalid boolean value for %s: %q", domain.ErrConfiguration, key, raw)
	}
	return nil
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
