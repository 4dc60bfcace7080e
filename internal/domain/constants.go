package domain

// File permission constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// HistoryFilePermissions is the permission for persisted history files (rw-r--r--)
	HistoryFilePermissions = 0o644
	// ConfigFilePermissions is the permission for the config file (rw-------)
	ConfigFilePermissions = 0o600
)

// Configuration defaults
const (
	// DefaultMaxHistorySize is the default history capacity
	DefaultMaxHistorySize = 100
	// DefaultPrecision is the default number of decimal places for results
	DefaultPrecision = 2
	// DefaultMaxInputValue is the default maximum operand magnitude
	DefaultMaxInputValue = 1_000_000.0
)

// History backends
const (
	// BackendCSV persists history to a CSV file (the default)
	BackendCSV = "csv"
	// BackendSQLite persists history to an SQLite database
	BackendSQLite = "sqlite"
)
