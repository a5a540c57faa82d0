// Package errors defines the API error taxonomy for the gateway.
package errors

import "net/http"

// APIError represents an error that maps directly onto an HTTP response.
// Name is the protocol-visible error label (the "error" field of the wire
// envelope), Message carries the human-readable detail.
type APIError struct {
	HTTPStatus int    `json:"-"`
	Name       string `json:"error"`
	Message    string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Predefined API errors
var (
	ErrBadRequest     = &APIError{HTTPStatus: http.StatusBadRequest, Name: "Bad Request", Message: "Invalid request parameters"}
	ErrUnauthorized   = &APIError{HTTPStatus: http.StatusUnauthorized, Name: "Unauthorized", Message: "Unauthorized"}
	ErrInternalServer = &APIError{HTTPStatus: http.StatusInternalServerError, Name: "Internal Server Error", Message: "Internal server error"}
	ErrBadGateway     = &APIError{HTTPStatus: http.StatusBadGateway, Name: "Bad Gateway", Message: "Upstream engine failure"}
)

// NewAPIError creates a new APIError based on a predefined error, with a
// custom message.
func NewAPIError(base *APIError, message string) *APIError {
	return &APIError{
		HTTPStatus: base.HTTPStatus,
		Name:       base.Name,
		Message:    message,
	}
}

// NewValidationError creates a 400 error for a malformed or mistyped request
// payload. The message must name the offending field.
func NewValidationError(message string) *APIError {
	return NewAPIError(ErrBadRequest, message)
}
