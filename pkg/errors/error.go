// Package errors provides structured error handling with typed error codes.
//
// Error codes are organized into categories:
//   - General errors (1-99): Unknown and general errors
//   - Validation errors (100-199): Value object invariant violations
//   - Configuration errors (200-299): Engine and strategy configuration errors
//   - Market data errors (300-399): Missing fields and data gap errors
//   - Portfolio and trade errors (400-499): Cash and position bookkeeping errors
//   - Risk errors (500-599): Risk calculation errors
//   - Backtest errors (600-699): Simulation run errors
//
// Usage:
//
//	// Create a new error
//	err := errors.New(errors.ErrCodeInvalidPrice, "price must be positive")
//
//	// Create a formatted error
//	err := errors.Newf(errors.ErrCodePositionNotFound, "no position with id %s", id)
//
//	// Wrap an existing error
//	err := errors.Wrap(errors.ErrCodeStrategyExecution, "strategy failed", originalErr)
//
//	// Check error code
//	if errors.HasCode(err, errors.ErrCodeInsufficientCash) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error with an error code and message.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Newf creates a new Error with the given code and formatted message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   nil,
	}
}

// Wrap wraps an existing error with a new Error containing the given code and message.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an existing error with a new Error containing the given code and formatted message.
func Wrapf(code ErrorCode, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Cause)
	}

	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard errors.Is function.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard errors.As function.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetCode extracts the ErrorCode from an error if it's an *Error type.
// Returns ErrCodeUnknown if the error is not an *Error type.
func GetCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return ErrCodeUnknown
}

// HasCode checks if an error has a specific ErrorCode.
func HasCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// IsValidation reports whether err carries a validation-family code.
func IsValidation(err error) bool {
	code := GetCode(err)

	return code >= 100 && code < 200
}

// IsConfig reports whether err carries a configuration-family code.
func IsConfig(err error) bool {
	code := GetCode(err)

	return code >= 200 && code < 300
}

// DataGapError reports a market data tick that is missing fields a
// strategy requires. The engine skips such ticks unless the number of
// consecutive gaps exceeds its configured maximum.
type DataGapError struct {
	TickIndex     int      // Index of the gapped tick in the stream
	MissingFields []string // Fields the strategy declared but the tick lacks
	Message       string   // Human-readable message
}

// NewDataGapError creates a new DataGapError.
func NewDataGapError(tickIndex int, missingFields []string, message string) *DataGapError {
	return &DataGapError{
		TickIndex:     tickIndex,
		MissingFields: missingFields,
		Message:       message,
	}
}

// Error implements the error interface.
func (e *DataGapError) Error() string {
	return e.Message
}

// IsDataGapError checks if an error is a DataGapError.
// It uses errors.As to check the error chain.
func IsDataGapError(err error) bool {
	var gapErr *DataGapError

	return errors.As(err, &gapErr)
}
