// Package middleware provides HTTP middleware for the gateway.
package middleware

import (
	"strings"
	"time"

	"trans-gate/internal/auth"
	"trans-gate/internal/config"
	app_errors "trans-gate/internal/errors"
	"trans-gate/internal/response"
	"trans-gate/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestID assigns each request an id, honoring an inbound X-Request-ID
// header and echoing the id on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(response.RequestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// CORS sets cross-origin headers and answers preflight requests.
func CORS(corsConfig types.CORSConfig) gin.HandlerFunc {
	allowedOrigins := strings.Join(corsConfig.AllowedOrigins, ", ")
	allowedMethods := strings.Join(corsConfig.AllowedMethods, ", ")
	allowedHeaders := strings.Join(corsConfig.AllowedHeaders, ", ")

	return func(c *gin.Context) {
		if !corsConfig.Enabled {
			c.Next()
			return
		}

		c.Header("Access-Control-Allow-Origin", allowedOrigins)
		c.Header("Access-Control-Allow-Methods", allowedMethods)
		c.Header("Access-Control-Allow-Headers", allowedHeaders)
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// Logger logs completed requests when the live request-logging toggle is on.
// Monitoring endpoints only surface when they fail.
func Logger(settings *config.RuntimeSettingsManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		statusCode := c.Writer.Status()
		if isMonitoringEndpoint(c.Request.URL.Path) && statusCode < 400 {
			return
		}
		if !settings.LogRequests() && statusCode < 400 {
			return
		}

		latency := time.Since(start)
		method := c.Request.Method
		path := c.Request.URL.Path
		requestID := c.GetString(response.RequestIDKey)

		switch {
		case statusCode >= 500:
			logrus.Errorf("[%s] %s %s - %d - %v", requestID, method, path, statusCode, latency)
		case statusCode >= 400:
			logrus.Warnf("[%s] %s %s - %d - %v", requestID, method, path, statusCode, latency)
		default:
			logrus.Infof("[%s] %s %s - %d - %v", requestID, method, path, statusCode, latency)
		}
	}
}

// Auth enforces the shared-secret token using the standard extraction order.
// Adapters with protocol-specific credential schemes do their own checks.
func Auth(settings *config.RuntimeSettingsManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiErr := auth.Require(c, settings); apiErr != nil {
			response.Error(c, apiErr)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Recovery converts panics into 500 responses.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logrus.Errorf("Panic recovered: %v", recovered)
		response.Error(c, app_errors.ErrInternalServer)
		c.Abort()
	})
}

// ErrorHandler turns errors attached to the context into wire responses.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		if apiErr, ok := err.(*app_errors.APIError); ok {
			response.Error(c, apiErr)
			return
		}

		logrus.Errorf("Unhandled error: %v", err)
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInternalServer, err.Error()))
	}
}

// isMonitoringEndpoint reports whether the path is a monitoring endpoint.
func isMonitoringEndpoint(path string) bool {
	switch path {
	case "/health", "/__heartbeat__", "/__lbheartbeat__":
		return true
	}
	return false
}
