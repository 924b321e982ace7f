package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure.
type ValidationError struct {
	Field   string // The config field path (e.g., "output.format")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels.
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidOutputFormats returns the list of valid propagation record formats.
func ValidOutputFormats() []string {
	return []string{"raw", "json", "yaml"}
}

// Validate checks the Config for invalid values and returns all validation
// errors found.
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateRun()...)
	errors = append(errors, c.validateOutput()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateRun() []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(c.Run.Program) == "" {
		errors = append(errors, ValidationError{
			Field:   "run.program",
			Value:   c.Run.Program,
			Message: "must not be empty",
		})
	}

	if c.Run.GracePeriodMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "run.grace_period_ms",
			Value:   c.Run.GracePeriodMs,
			Message: "must be zero or positive",
		})
	}

	return errors
}

func (c *Config) validateOutput() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidOutputFormats(), c.Output.Format) {
		errors = append(errors, ValidationError{
			Field:   "output.format",
			Value:   c.Output.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidOutputFormats(), ", ")),
		})
	}

	if c.Output.ScrollbackLines < 0 {
		errors = append(errors, ValidationError{
			Field:   "output.scrollback_lines",
			Value:   c.Output.ScrollbackLines,
			Message: "must be zero or positive",
		})
	}

	if c.Output.MaxLineBytes < 1024 {
		errors = append(errors, ValidationError{
			Field:   "output.max_line_bytes",
			Value:   c.Output.MaxLineBytes,
			Message: "must be at least 1024",
		})
	}

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.RedrawIntervalMs < 16 {
		errors = append(errors, ValidationError{
			Field:   "tui.redraw_interval_ms",
			Value:   c.TUI.RedrawIntervalMs,
			Message: "must be at least 16 (beyond ~60fps redraws flood the terminal)",
		})
	}

	if c.TUI.MaxLabelWidth < 10 {
		errors = append(errors, ValidationError{
			Field:   "tui.max_label_width",
			Value:   c.TUI.MaxLabelWidth,
			Message: "must be at least 10",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
