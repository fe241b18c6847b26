package errors

import (
	"net/http"

	"wander/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	// ErrValidationFailed covers missing or malformed local input: an
	// empty email, no photo selected, an unknown catalog category. It is
	// always resolved before any remote call is attempted.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"invalid input",
		"",
	)

	// ErrAuthRequired is returned when a favorite operation is attempted
	// without a session.
	ErrAuthRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_REQUIRED",
		"sign in required",
		"",
	)

	// ErrNotFound covers an absent place or profile document.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	// ErrFetchFailed marks a listing read failure. Callers still receive
	// an empty result set alongside it.
	ErrFetchFailed = NewBaseError(
		http.StatusBadGateway,
		"FETCH_FAILED",
		"failed to load listing",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// AuthError carries an identity-provider rejection. The provider's reason
// string is preserved verbatim: bad credentials, throttling and network
// failures are surfaced to the caller without re-interpretation.
type AuthError struct {
	reason string
}

// NewAuthError creates an identity-provider error with the given reason.
func NewAuthError(reason string) AppError {
	return &AuthError{reason: reason}
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.reason
}

// HTTPCode returns the HTTP status code
func (e *AuthError) HTTPCode() int {
	return http.StatusUnauthorized
}

// ErrorCode returns the business error code
func (e *AuthError) ErrorCode() string {
	return "AUTH_FAILED"
}

// Message returns the provider's reason verbatim
func (e *AuthError) Message() string {
	return e.reason
}

// Reason returns the provider's reason code, e.g. EMAIL_NOT_FOUND.
func (e *AuthError) Reason() string {
	return e.reason
}

// Details returns detailed error information
func (e *AuthError) Details() string {
	return ""
}
