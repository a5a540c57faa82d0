package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"trans-gate/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestContext(t *testing.T, target string, headers map[string]string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	for key, value := range headers {
		c.Request.Header.Set(key, value)
	}
	return c
}

func newSettings(t *testing.T, apiToken string) *config.RuntimeSettingsManager {
	t.Helper()
	t.Setenv("API_TOKEN", apiToken)
	configManager, err := config.NewManager()
	require.NoError(t, err)
	return config.NewRuntimeSettingsManager(configManager)
}

func TestFromAuthorization(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "empty", value: "", want: ""},
		{name: "bearer prefix stripped", value: "Bearer secret", want: "secret"},
		{name: "bare token passes through", value: "secret", want: "secret"},
		{name: "case sensitive prefix", value: "bearer secret", want: "bearer secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromAuthorization(tt.value))
		})
	}
}

func TestExtractTokenOrder(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		headers map[string]string
		want    string
	}{
		{
			name:    "authorization header wins",
			target:  "/?api_token=from-query&token=from-token",
			headers: map[string]string{"Authorization": "Bearer from-header", "X-API-Token": "from-x"},
			want:    "from-header",
		},
		{
			name:   "api_token beats token",
			target: "/?api_token=from-query&token=from-token",
			want:   "from-query",
		},
		{
			name:    "token beats x-api-token",
			target:  "/?token=from-token",
			headers: map[string]string{"X-API-Token": "from-x"},
			want:    "from-token",
		},
		{
			name:    "x-api-token last",
			target:  "/",
			headers: map[string]string{"X-API-Token": "from-x"},
			want:    "from-x",
		},
		{
			name:   "no credential",
			target: "/",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newRequestContext(t, tt.target, tt.headers)
			assert.Equal(t, tt.want, ExtractToken(c))
		})
	}
}

func TestTokensEqual(t *testing.T) {
	assert.True(t, TokensEqual("secret", "secret"))
	assert.False(t, TokensEqual("secret", "other"))
	assert.False(t, TokensEqual("", "secret"))
	assert.True(t, TokensEqual("", ""))
}

func TestRequire(t *testing.T) {
	t.Run("disabled when no token configured", func(t *testing.T) {
		settings := newSettings(t, "")
		c := newRequestContext(t, "/", nil)
		assert.Nil(t, Require(c, settings))
	})

	t.Run("matching credential", func(t *testing.T) {
		settings := newSettings(t, "secret")
		c := newRequestContext(t, "/", map[string]string{"Authorization": "Bearer secret"})
		assert.Nil(t, Require(c, settings))
	})

	t.Run("wrong credential", func(t *testing.T) {
		settings := newSettings(t, "secret")
		c := newRequestContext(t, "/", map[string]string{"Authorization": "Bearer nope"})
		apiErr := Require(c, settings)
		require.NotNil(t, apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.HTTPStatus)
	})

	t.Run("missing credential", func(t *testing.T) {
		settings := newSettings(t, "secret")
		c := newRequestContext(t, "/", nil)
		require.NotNil(t, Require(c, settings))
	})
}
