// Package apperrors defines the structured error types of fanwait and the
// process exit codes they map to.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Types that carry a cause implement Unwrap() so errors.Is and errors.As see
// through them.
package apperrors
