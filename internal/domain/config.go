// Package domain defines the core entities of the calculator: the operation
// registry, calculation records, the bounded history, undo/redo snapshots,
// configuration, and the error taxonomy. It has no infrastructure
// dependencies.
package domain

// Config holds all calculator settings. Values come from the YAML config file
// with CALC_* environment variables taking precedence; see the
// infrastructure/config loader.
type Config struct {
	LogDir         string  `yaml:"log_dir"`
	LogFile        string  `yaml:"log_file"`
	HistoryDir     string  `yaml:"history_dir"`
	HistoryFile    string  `yaml:"history_file"`
	HistoryBackend string  `yaml:"history_backend"`
	MaxHistorySize int     `yaml:"max_history_size"`
	AutoSave       bool    `yaml:"auto_save"`
	Precision      int     `yaml:"precision"`
	MaxInputValue  float64 `yaml:"max_input_value"`
	Verbose        bool    `yaml:"verbose"`
}
