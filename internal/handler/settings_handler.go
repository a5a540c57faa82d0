package handler

import (
	"net/http"

	"trans-gate/internal/payload"
	"trans-gate/internal/response"
	"trans-gate/internal/types"
	"trans-gate/internal/version"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// settingsView is the wire shape for runtime settings. The token itself is
// never returned, only whether one is set.
type settingsView struct {
	APITokenSet bool   `json:"api_token_set"`
	CacheSize   int    `json:"cache_size"`
	LogRequests bool   `json:"log_requests"`
	LogLevel    string `json:"log_level"`
}

func newSettingsView(s types.RuntimeSettings) settingsView {
	return settingsView{
		APITokenSet: s.APIToken != "",
		CacheSize:   s.CacheSize,
		LogRequests: s.LogRequests,
		LogLevel:    s.LogLevel,
	}
}

// GetSettings returns the current runtime settings along with the build
// version and service status.
func (s *Server) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"version":  version.Version,
		"settings": newSettingsView(s.Settings.Snapshot()),
	})
}

// ApplySettings applies a partial runtime settings update. Absent fields keep
// their current values.
func (s *Server) ApplySettings(c *gin.Context) {
	body, apiErr := payload.Parse(c, payload.ParseOptions{})
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}

	apiToken, hasToken, apiErr := body.OptionalString("api_token")
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	cacheSize, hasCacheSize, apiErr := body.OptionalNumber("cache_size")
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	logRequests, hasLogRequests, apiErr := body.OptionalBool("log_requests")
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	logLevel, hasLogLevel, apiErr := body.OptionalString("log_level")
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}

	updated := s.Settings.Update(func(rs *types.RuntimeSettings) {
		if hasToken {
			rs.APIToken = apiToken
		}
		if hasCacheSize {
			rs.CacheSize = int(cacheSize)
		}
		if hasLogRequests {
			rs.LogRequests = logRequests
		}
		if hasLogLevel {
			rs.LogLevel = logLevel
		}
	})

	logrus.Info("Runtime settings updated")
	c.JSON(http.StatusOK, newSettingsView(updated))
}

// ResetSettings restores the runtime settings captured at startup.
func (s *Server) ResetSettings(c *gin.Context) {
	restored := s.Settings.Reset()
	logrus.Info("Runtime settings reset to startup values")
	c.JSON(http.StatusOK, newSettingsView(restored))
}
