// Package response provides standardized JSON response helpers.
package response

import (
	"net/http"

	app_errors "trans-gate/internal/errors"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key under which the request id is stored.
const RequestIDKey = "requestId"

// maskedMessage replaces internal error details in release mode.
const maskedMessage = "An unexpected error occurred"

// ErrorBody defines the standard JSON error response structure.
type ErrorBody struct {
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"requestId"`
}

// Error sends a standardized error response using an APIError.
// Unauthorized responses carry no message field; 500-class messages are
// masked in release mode so internal details never reach clients.
func Error(c *gin.Context, apiErr *app_errors.APIError) {
	requestID := c.GetString(RequestIDKey)
	if requestID == "" {
		requestID = "-"
	}

	if apiErr.HTTPStatus == http.StatusUnauthorized {
		c.JSON(http.StatusUnauthorized, ErrorBody{
			Error:     apiErr.Name,
			RequestID: requestID,
		})
		return
	}

	message := apiErr.Message
	if apiErr.HTTPStatus >= http.StatusInternalServerError && gin.Mode() == gin.ReleaseMode {
		message = maskedMessage
	}

	c.JSON(apiErr.HTTPStatus, ErrorBody{
		Error:     apiErr.Name,
		Message:   message,
		RequestID: requestID,
	})
}
