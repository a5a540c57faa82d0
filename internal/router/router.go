// Package router wires the HTTP routes to their handlers.
package router

import (
	"net/http"

	"trans-gate/internal/config"
	"trans-gate/internal/handler"
	"trans-gate/internal/middleware"
	"trans-gate/internal/types"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with all middleware and routes registered.
func NewRouter(
	serverHandler *handler.Server,
	configManager types.ConfigManager,
	settings *config.RuntimeSettingsManager,
) *gin.Engine {
	if configManager.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Register global middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Logger(settings))
	router.Use(middleware.CORS(configManager.GetCORSConfig()))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	registerSystemRoutes(router, serverHandler)
	registerAPIRoutes(router, serverHandler, settings)

	router.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "404")
	})

	return router
}

// registerSystemRoutes registers unauthenticated system-level routes
func registerSystemRoutes(router *gin.Engine, serverHandler *handler.Server) {
	router.GET("/health", serverHandler.Health)
	router.GET("/version", serverHandler.Version)
	router.GET("/__heartbeat__", serverHandler.Heartbeat)
	router.GET("/__lbheartbeat__", serverHandler.Heartbeat)
}

// registerAPIRoutes registers the translation routes. Adapters with their own
// credential schemes sit outside the shared auth group and check tokens
// themselves.
func registerAPIRoutes(router *gin.Engine, serverHandler *handler.Server, settings *config.RuntimeSettingsManager) {
	authorized := router.Group("/")
	authorized.Use(middleware.Auth(settings))
	{
		authorized.GET("/languages", serverHandler.Languages)
		authorized.POST("/detect", serverHandler.Detect)
		authorized.POST("/translate", serverHandler.Translate)
		authorized.POST("/translate/batch", serverHandler.TranslateBatch)

		authorized.POST("/google/language/translate/v2", serverHandler.GoogleTranslate)
		authorized.GET("/google/translate_a/single", serverHandler.GoogleTranslateSingle)

		authorized.POST("/hcfy", serverHandler.HcfyTranslate)
		authorized.POST("/kiss", serverHandler.KissTranslate)

		authorized.GET("/api/settings", serverHandler.GetSettings)
		authorized.POST("/api/settings/apply", serverHandler.ApplySettings)
		authorized.POST("/api/settings/reset", serverHandler.ResetSettings)
	}

	router.POST("/deepl", serverHandler.DeepLTranslate)
	router.POST("/deeplx", serverHandler.DeepLXTranslate)
	router.POST("/imme", serverHandler.ImmeTranslate)
}
