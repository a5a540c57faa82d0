// Package config provides configuration management for the translation gateway.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"trans-gate/internal/types"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Constants for default configuration values
const (
	defaultHost                = "0.0.0.0"
	defaultPort                = 8989
	defaultReadTimeout         = 60
	defaultWriteTimeout        = 600
	defaultIdleTimeout         = 120
	defaultShutdownTimeout     = 10
	defaultEngineURL           = "http://localhost:8990"
	defaultEngineConnTimeout   = 15
	defaultEngineReqTimeout    = 600
	defaultEngineIdleTimeout   = 120
	defaultEngineMaxIdle       = 100
	defaultEngineMaxIdlePerHost = 50
	defaultCacheSize           = 1000
)

// Config represents the full static application configuration
type Config struct {
	Server          types.ServerConfig
	Log             types.LogConfig
	CORS            types.CORSConfig
	Engine          types.EngineConfig
	RuntimeDefaults types.RuntimeSettings
	Environment     string
}

// Manager implements types.ConfigManager backed by environment variables.
type Manager struct {
	mu     sync.RWMutex
	config *Config
}

// NewManager creates a new configuration manager
func NewManager() (*Manager, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using system environment variables")
	}

	manager := &Manager{}
	if err := manager.ReloadConfig(); err != nil {
		return nil, err
	}

	if err := manager.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return manager, nil
}

// ReloadConfig re-reads all configuration from the environment.
func (m *Manager) ReloadConfig() error {
	config := &Config{
		Server: types.ServerConfig{
			Host:                    parseString("HOST", defaultHost),
			Port:                    parseInteger("PORT", defaultPort),
			ReadTimeout:             parseInteger("SERVER_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout:            parseInteger("SERVER_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:             parseInteger("SERVER_IDLE_TIMEOUT", defaultIdleTimeout),
			GracefulShutdownTimeout: parseInteger("SERVER_GRACEFUL_SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		},
		Log: types.LogConfig{
			Level:      parseString("LOG_LEVEL", "info"),
			Format:     parseString("LOG_FORMAT", "text"),
			EnableFile: parseBoolean("LOG_ENABLE_FILE", false),
			FilePath:   parseString("LOG_FILE_PATH", "./logs/app.log"),
		},
		CORS: types.CORSConfig{
			Enabled:        parseBoolean("ENABLE_CORS", true),
			AllowedOrigins: parseArray("ALLOWED_ORIGINS", "*"),
			AllowedMethods: parseArray("ALLOWED_METHODS", "GET, POST, PUT, DELETE, OPTIONS"),
			AllowedHeaders: parseArray("ALLOWED_HEADERS", "Content-Type, Authorization, X-API-Token"),
		},
		Engine: types.EngineConfig{
			URL:                 parseString("ENGINE_URL", defaultEngineURL),
			ConnectTimeout:      parseInteger("ENGINE_CONNECT_TIMEOUT", defaultEngineConnTimeout),
			RequestTimeout:      parseInteger("ENGINE_REQUEST_TIMEOUT", defaultEngineReqTimeout),
			IdleConnTimeout:     parseInteger("ENGINE_IDLE_CONN_TIMEOUT", defaultEngineIdleTimeout),
			MaxIdleConns:        parseInteger("ENGINE_MAX_IDLE_CONNS", defaultEngineMaxIdle),
			MaxIdleConnsPerHost: parseInteger("ENGINE_MAX_IDLE_CONNS_PER_HOST", defaultEngineMaxIdlePerHost),
		},
		RuntimeDefaults: types.RuntimeSettings{
			APIToken:    parseString("API_TOKEN", ""),
			CacheSize:   parseInteger("CACHE_SIZE", defaultCacheSize),
			LogRequests: parseBoolean("LOG_REQUESTS", false),
			LogLevel:    parseString("LOG_LEVEL", "info"),
		},
		Environment: parseString("ENVIRONMENT", "development"),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.config = config
	return nil
}

// GetServerConfig returns the HTTP server configuration
func (m *Manager) GetServerConfig() types.ServerConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.Server
}

// GetLogConfig returns the logging configuration
func (m *Manager) GetLogConfig() types.LogConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.Log
}

// GetCORSConfig returns the CORS configuration
func (m *Manager) GetCORSConfig() types.CORSConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.CORS
}

// GetEngineConfig returns the upstream engine configuration
func (m *Manager) GetEngineConfig() types.EngineConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.Engine
}

// GetRuntimeDefaults returns the env-derived defaults for runtime settings
func (m *Manager) GetRuntimeDefaults() types.RuntimeSettings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.RuntimeDefaults
}

// IsProduction reports whether the server runs in production mode
func (m *Manager) IsProduction() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return strings.EqualFold(m.config.Environment, "production")
}

// Validate checks the configuration for invalid values
func (m *Manager) Validate() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config.Server.Port < 1 || m.config.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", m.config.Server.Port)
	}
	if m.config.Server.ReadTimeout < 1 {
		return fmt.Errorf("invalid read timeout: %d", m.config.Server.ReadTimeout)
	}
	if strings.TrimSpace(m.config.Engine.URL) == "" {
		return fmt.Errorf("ENGINE_URL must not be empty")
	}
	return nil
}

// DisplayServerConfig logs a condensed view of the effective configuration
func (m *Manager) DisplayServerConfig() {
	m.mu.RLock()
	defer m.mu.RUnlock()

	authState := "disabled"
	if m.config.RuntimeDefaults.APIToken != "" {
		authState = "enabled"
	}
	cacheState := strconv.Itoa(m.config.RuntimeDefaults.CacheSize)
	if m.config.RuntimeDefaults.CacheSize <= 0 {
		cacheState = "disabled"
	}

	logrus.Infof("Server: %s:%d (env: %s)", m.config.Server.Host, m.config.Server.Port, m.config.Environment)
	logrus.Infof("Engine upstream: %s", m.config.Engine.URL)
	logrus.Infof("Auth: %s, result cache: %s entries", authState, cacheState)
}

func parseString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseInteger(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		logrus.Warnf("Invalid integer for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func parseBoolean(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		logrus.Warnf("Invalid boolean for %s: %q, using default %t", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func parseArray(key, defaultValue string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
