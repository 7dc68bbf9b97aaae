// Package errors defines the application error taxonomy: each error carries
// an HTTP status, a machine-readable business code and a user-facing message.
package errors

import (
	"net/http"

	"passport/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types. Messages follow the public API contract, so they
// are part of the interface, not just diagnostics.
var (
	// ErrUserAlreadyExists is returned when registering an email that is
	// already taken. Surfaced as 409 rather than a server fault.
	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"User already registered with this email address",
		"",
	)

	// ErrUserNotRegistered is returned on login with an unknown email.
	ErrUserNotRegistered = NewBaseError(
		http.StatusBadRequest,
		"USER_NOT_REGISTERED",
		"User not registered with this email",
		"",
	)

	// ErrInvalidCredentials is returned on a password mismatch.
	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Invalid Email or password",
		"",
	)

	// ErrInvalidToken is returned when a token is malformed, has a bad
	// signature, or is expired.
	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Validation error",
		"",
	)

	ErrNoUsersRegistered = NewBaseError(
		http.StatusNotFound,
		"NO_USERS_REGISTERED",
		"No users registered",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Something went wrong, try again later",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong, try again later",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing
// the AppError interface. The wrapped cause is logged, never returned to the
// client.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message.
func (e *DatabaseExecuteError) Message() string {
	return "Something went wrong, try again later"
}

// Details returns detailed error information.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
