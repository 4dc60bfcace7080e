package domain

import "errors"

// Sentinel errors for the calculator core. Callers match them with errors.Is;
// wrapping sites add the offending value via fmt.Errorf("%w: ...", err).
var (
	// ErrValidation indicates a non-numeric or out-of-range operand.
	ErrValidation = errors.New("validation failed")
	// ErrUnknownOperation indicates an operation name outside the registry.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrDivisionByZero indicates a zero divisor or denominator.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidRoot indicates a 0th root or an even root of a negative number.
	ErrInvalidRoot = errors.New("invalid root")
	// ErrOperationFailed indicates overflow or a domain error in power/root.
	ErrOperationFailed = errors.New("operation failed")
	// ErrNothingToUndo indicates an empty undo stack.
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrNothingToRedo indicates an empty redo stack.
	ErrNothingToRedo = errors.New("nothing to redo")
	// ErrEmptyHistory indicates an attempt to save with no records.
	ErrEmptyHistory = errors.New("no history to save")
	// ErrFileNotFound indicates a missing history file on load.
	ErrFileNotFound = errors.New("history file not found")
	// ErrPersist indicates an I/O or format failure while saving or loading.
	ErrPersist = errors.New("history persistence failed")
	// ErrConfiguration indicates a malformed configuration value.
	ErrConfiguration = errors.New("invalid configuration")
)
