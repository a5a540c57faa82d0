// Package auth implements shared-secret credential extraction and checking.
//
// A single static token is configured for the whole deployment; requests are
// checked by exact match. There is no per-user identity. An empty configured
// token disables authentication entirely.
package auth

import (
	"crypto/subtle"
	"strings"

	"trans-gate/internal/config"
	app_errors "trans-gate/internal/errors"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// FromAuthorization extracts a token from an Authorization header value,
// stripping a "Bearer " prefix when present. A bare token passes through
// unchanged.
func FromAuthorization(value string) string {
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, bearerPrefix) {
		return value[len(bearerPrefix):]
	}
	return value
}

// ExtractToken returns the first non-empty credential found, checking in
// order: Authorization header, api_token query parameter, token query
// parameter, X-API-Token header. The order is part of the wire contract.
func ExtractToken(c *gin.Context) string {
	if token := FromAuthorization(c.GetHeader("Authorization")); token != "" {
		return token
	}
	if token := c.Query("api_token"); token != "" {
		return token
	}
	if token := c.Query("token"); token != "" {
		return token
	}
	return c.GetHeader("X-API-Token")
}

// TokensEqual compares a presented credential against the configured secret
// in constant time.
func TokensEqual(presented, secret string) bool {
	return subtle.ConstantTimeCompare([]byte(presented), []byte(secret)) == 1
}

// Require checks the request credential against the configured shared secret.
// It returns nil when auth is disabled (no token configured) or the
// credential matches, and ErrUnauthorized otherwise.
func Require(c *gin.Context, settings *config.RuntimeSettingsManager) *app_errors.APIError {
	secret := settings.APIToken()
	if secret == "" {
		return nil
	}
	if !TokensEqual(ExtractToken(c), secret) {
		return app_errors.ErrUnauthorized
	}
	return nil
}
