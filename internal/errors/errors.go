// Package errors provides centralized error definitions and error handling
// utilities for the comux codebase. It defines domain-specific error types,
// sentinel errors, constructors with cause wrapping, and classification
// helpers.
//
// The package distinguishes two families of failures:
//
//   - ConfigError: the run could not be configured (unreadable task file,
//     empty command set, unknown output format). These are fatal and are
//     reported before any process is spawned.
//   - SpawnError: one child process could not be started. These are
//     process-local and never abort sibling processes; they surface through
//     the affected process's status and the aggregated exit code.
//
// Stream read failures are deliberately plain wrapped errors: they are
// warnings attached to a running process and carry no policy of their own.
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Sentinel errors for configuration failures.
var (
	// ErrNoCommands indicates that loading and deduplication produced an
	// empty command set.
	ErrNoCommands = New("no commands to run")
	// ErrUnknownFormat indicates an unrecognized output format name.
	ErrUnknownFormat = New("unknown output format")
	// ErrEmptyProgram indicates that the shell indirection program is empty.
	ErrEmptyProgram = New("program must not be empty")
)

// ConfigError represents a failure to configure the run. Configuration
// errors are fatal and occur strictly before any process is spawned, so
// there is never anything to clean up.
type ConfigError struct {
	message string
	cause   error
}

// NewConfigError creates a ConfigError with an optional underlying cause.
func NewConfigError(message string, cause error) *ConfigError {
	return &ConfigError{message: message, cause: cause}
}

// Error returns the error message.
func (e *ConfigError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *ConfigError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// SpawnError represents a failure to start one child process. It is
// process-local: the affected process is marked failed and siblings
// continue unaffected.
type SpawnError struct {
	// Command is the command text that could not be spawned.
	Command string
	cause   error
}

// NewSpawnError creates a SpawnError for the given command text.
func NewSpawnError(command string, cause error) *SpawnError {
	return &SpawnError{Command: command, cause: cause}
}

// Error returns the error message.
func (e *SpawnError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("failed to spawn %q: %v", e.Command, e.cause)
	}
	return fmt.Sprintf("failed to spawn %q", e.Command)
}

// Unwrap returns the underlying error.
func (e *SpawnError) Unwrap() error {
	return e.cause
}

// IsConfig reports whether err is (or wraps) a configuration error,
// meaning the run must abort before spawning anything.
func IsConfig(err error) bool {
	var ce *ConfigError
	return As(err, &ce)
}

// IsSpawn reports whether err is (or wraps) a spawn error.
func IsSpawn(err error) bool {
	var se *SpawnError
	return As(err, &se)
}
