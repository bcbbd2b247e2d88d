// Package errors provides structured error handling with typed error codes.
//
// Error codes are organized into categories:
//   - General errors (1-99): Unknown errors
//   - Validation errors (100-199): Invalid windows, misaligned input series, bad configuration
//   - Indicator errors (300-399): Failures while composing indicator snapshots
//
// Usage:
//
//	// Reject a zero smoothing window
//	err := errors.Newf(errors.ErrCodeInvalidWindow, "window must be a positive integer, got %d", window)
//
//	// Attach the data shortfall as the cause
//	err := errors.Wrap(errors.ErrCodeInvalidInput, "not enough bars", errors.NewInsufficientDataError(7, 3, "", "need 7 bars, got 3"))
//
//	// Check error code
//	if errors.HasCode(err, errors.ErrCodeInvalidWindow) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Error is a coded error returned by the indicator constructors and the analyzer.
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
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps cause in a new Error carrying code and message.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(code ErrorCode, cause error, format string, args ...any) *Error {
	return Wrap(code, fmt.Sprintf(format, args...), cause)
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

// Is is a passthrough to the standard errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a passthrough to the standard errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetCode extracts the outermost ErrorCode from err's chain.
// Returns ErrCodeUnknown if no *Error is found.
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

// InsufficientDataError reports that a series is too short for a calculation,
// e.g. fewer bars than a smoothing window needs.
type InsufficientDataError struct {
	Required int    // Minimum data points required
	Actual   int    // Actual data points available
	Symbol   string // Optional: symbol context
	Message  string // Human-readable message
}

// NewInsufficientDataError creates a new InsufficientDataError.
func NewInsufficientDataError(required, actual int, symbol, message string) *InsufficientDataError {
	return &InsufficientDataError{
		Required: required,
		Actual:   actual,
		Symbol:   symbol,
		Message:  message,
	}
}

// NewInsufficientDataErrorf creates a new InsufficientDataError with a formatted message.
func NewInsufficientDataErrorf(required, actual int, symbol, format string, args ...any) *InsufficientDataError {
	return NewInsufficientDataError(required, actual, symbol, fmt.Sprintf(format, args...))
}

// Error implements the error interface.
func (e *InsufficientDataError) Error() string {
	return e.Message
}

// IsInsufficientDataError reports whether err's chain contains an InsufficientDataError.
func IsInsufficientDataError(err error) bool {
	var insufficientErr *InsufficientDataError

	return errors.As(err, &insufficientErr)
}
