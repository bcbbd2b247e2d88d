package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidWindow        ErrorCode = 120
	ErrCodeInvalidInput         ErrorCode = 121

	// Indicator errors (300-399)
	ErrCodeIndicatorCalculation ErrorCode = 302
)
