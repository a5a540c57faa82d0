// Package handler contains the HTTP handlers for every supported wire format.
package handler

import (
	"net/http"

	"trans-gate/internal/config"
	"trans-gate/internal/engine"
	"trans-gate/internal/services"
	"trans-gate/internal/types"
	"trans-gate/internal/version"

	"github.com/gin-gonic/gin"
	"go.uber.org/dig"
)

// Server holds the dependencies shared by all handlers.
type Server struct {
	TranslateService *services.TranslateService
	Engine           engine.Engine
	Detector         engine.Detector
	Settings         *config.RuntimeSettingsManager
	ConfigManager    types.ConfigManager
}

// ServerParams contains the dependencies for the Server.
type ServerParams struct {
	dig.In

	TranslateService *services.TranslateService
	Engine           engine.Engine
	Detector         engine.Detector
	Settings         *config.RuntimeSettingsManager
	ConfigManager    types.ConfigManager
}

// NewServer creates a new handler server.
func NewServer(params ServerParams) *Server {
	return &Server{
		TranslateService: params.TranslateService,
		Engine:           params.Engine,
		Detector:         params.Detector,
		Settings:         params.Settings,
		ConfigManager:    params.ConfigManager,
	}
}

// Health returns the service health.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Version returns the build version.
func (s *Server) Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": version.Version})
}

// Heartbeat answers load-balancer liveness probes.
func (s *Server) Heartbeat(c *gin.Context) {
	c.Status(http.StatusOK)
}
