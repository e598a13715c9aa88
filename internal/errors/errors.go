// Package apperrors defines the structured error types of the application
// and their mapping to process exit codes.
//
// All types carrying a cause implement Unwrap, so errors.Is and errors.As see
// through them to the domain sentinels (bignum.ErrInvalidNumberFormat,
// multiply.ErrSingularInterpolationMatrix, ...).
package apperrors

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Application exit codes define the standard exit statuses for the application.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates that two strategies returned different products.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents invalid flags, environment values or operands
// given on the command line.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError records which strategy failed and why.
type CalculationError struct {
	// Algorithm is the display name of the failing strategy. It may be empty.
	Algorithm string
	// Cause is the underlying error.
	Cause error
}

// NewCalculationError wraps cause with the name of the strategy that
// produced it.
func NewCalculationError(algorithm string, cause error) error {
	return CalculationError{Algorithm: algorithm, Cause: cause}
}

// Error returns the cause's message, prefixed by the algorithm when known.
func (e CalculationError) Error() string {
	if e.Algorithm == "" {
		return e.Cause.Error()
	}
	return e.Algorithm + ": " + e.Cause.Error()
}

// Unwrap returns the original wrapped error.
func (e CalculationError) Unwrap() error { return e.Cause }

// MismatchError reports strategies that disagree on the same product.
type MismatchError struct {
	// Products maps each strategy name to the product it returned.
	Products map[string]string
}

// Error lists the disagreeing strategies in a stable order.
func (e MismatchError) Error() string {
	names := make([]string, 0, len(e.Products))
	for name := range e.Products {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("products differ between %s", strings.Join(names, ", "))
}

// ServerError represents errors that occur in the HTTP server component.
type ServerError struct {
	// Message is a descriptive message about the server error.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error combines the descriptive message and the underlying cause if present.
func (e ServerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e ServerError) Unwrap() error { return e.Cause }

// NewServerError creates a new ServerError with a message and optional cause.
func NewServerError(message string, cause error) error {
	return ServerError{Message: message, Cause: cause}
}

// ValidationError represents an invalid request or operand.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message describes why validation failed.
	Message string
	// Value is the invalid value (optional, may be nil).
	Value any
	// Cause is the underlying error, if any.
	Cause error
}

// Error returns the error message for a ValidationError.
func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap returns the underlying error.
func (e ValidationError) Unwrap() error { return e.Cause }

// NewValidationError creates a new ValidationError.
//
// Parameters:
//   - field: The name of the field that failed validation.
//   - message: A description of why validation failed.
//   - value: The invalid value (optional).
//
// Returns:
//   - error: A new ValidationError instance.
func NewValidationError(field, message string, value any) error {
	return ValidationError{Field: field, Message: message, Value: value}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// It returns nil when err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	var (
		configErr   ConfigError
		mismatchErr MismatchError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.As(err, &mismatchErr):
		return ExitErrorMismatch
	case errors.As(err, &configErr):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}
