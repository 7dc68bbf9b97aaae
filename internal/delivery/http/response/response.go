// Package response defines the JSON shapes returned by the HTTP API.
// Every failure path carries a top-level "message"; validation failures add a
// field-scoped "errors" map.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// MessageResponse is the minimal acknowledgment body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body returned on any failure.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Message returns a response carrying only a human-readable message.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// JSON returns an arbitrary success payload.
func JSON(c echo.Context, statusCode int, payload any) error {
	return c.JSON(statusCode, payload)
}

// Error returns an error response with a message only.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorResponse{Message: message})
}

// ValidationError returns a 400 with field-scoped error details.
func ValidationError(c echo.Context, fields map[string]string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Message: "Validation error",
		Errors:  fields,
	})
}

// BadRequest returns a 400 error.
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// Unauthorized returns a 401 error.
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}

// NotFound returns a 404 error.
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, message)
}

// InternalServerError returns a 500 error.
func InternalServerError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, message)
}
