package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerDefaults(t *testing.T) {
	manager, err := NewManager()
	require.NoError(t, err)

	server := manager.GetServerConfig()
	assert.Equal(t, "0.0.0.0", server.Host)
	assert.Equal(t, 8989, server.Port)

	engineConfig := manager.GetEngineConfig()
	assert.Equal(t, "http://localhost:8990", engineConfig.URL)

	defaults := manager.GetRuntimeDefaults()
	assert.Empty(t, defaults.APIToken)
	assert.Equal(t, 1000, defaults.CacheSize)
	assert.False(t, defaults.LogRequests)

	assert.False(t, manager.IsProduction())
}

func TestNewManagerFromEnvironment(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9000")
	t.Setenv("ENGINE_URL", "http://engine.internal:7000")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	manager, err := NewManager()
	require.NoError(t, err)

	server := manager.GetServerConfig()
	assert.Equal(t, "127.0.0.1", server.Host)
	assert.Equal(t, 9000, server.Port)
	assert.Equal(t, "http://engine.internal:7000", manager.GetEngineConfig().URL)
	assert.True(t, manager.IsProduction())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, manager.GetCORSConfig().AllowedOrigins)
}

func TestValidateRejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "70000")
	_, err := NewManager()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port")
}

func TestInvalidIntegerFallsBackToDefault(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	manager, err := NewManager()
	require.NoError(t, err)
	assert.Equal(t, 8989, manager.GetServerConfig().Port)
}

func TestReloadConfig(t *testing.T) {
	manager, err := NewManager()
	require.NoError(t, err)
	assert.Equal(t, 8989, manager.GetServerConfig().Port)

	t.Setenv("PORT", "9100")
	require.NoError(t, manager.ReloadConfig())
	assert.Equal(t, 9100, manager.GetServerConfig().Port)
}
