package apperrors

import (
	"errors"
	"fmt"
	"io"
)

// Application exit codes.
const (
	ExitSuccess      = 0 // Indicates successful execution.
	ExitErrorGeneric = 1 // Indicates a generic error, including a failed unit.
	ExitErrorConfig  = 4 // Indicates a configuration error.
)

// ConfigError represents a user configuration error, such as an invalid flag
// or environment value.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// UnitError reports that the body of one work unit returned an error. The
// remaining units are unaffected; the error surfaces once the barrier has
// released.
type UnitError struct {
	// Ordinal identifies the unit in [0, N).
	Ordinal int
	// Cause is the error returned by the unit body.
	Cause error
}

// Error returns a message naming the failed unit.
func (e *UnitError) Error() string {
	return fmt.Sprintf("unit %d: %v", e.Ordinal, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *UnitError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// Returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// ColorProvider supplies the escape sequences used when printing errors.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// ExitCodeFor maps an error to the process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cfgErr ConfigError
	if errors.As(err, &cfgErr) {
		return ExitErrorConfig
	}
	return ExitErrorGeneric
}

// HandleRunError prints err to out and returns the matching exit code.
func HandleRunError(err error, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	var unitErr *UnitError
	if errors.As(err, &unitErr) {
		fmt.Fprintf(out, "%sUnit %d failed:%s %v\n", colors.Red(), unitErr.Ordinal, colors.Reset(), unitErr.Cause)
		return ExitCodeFor(err)
	}
	var cfgErr ConfigError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(out, "%sConfiguration error:%s %s\n", colors.Yellow(), colors.Reset(), cfgErr.Message)
		return ExitCodeFor(err)
	}
	fmt.Fprintf(out, "%sError:%s %v\n", colors.Red(), colors.Reset(), err)
	return ExitCodeFor(err)
}
