package config

import (
	"sync"

	"trans-gate/internal/types"

	"github.com/sirupsen/logrus"
)

// RuntimeSettingsManager owns the hot-mutable settings (shared-secret token,
// result-cache capacity, request-log toggle, log level). Auth checks and
// cache accesses re-read these on every call, so updates apply to in-flight
// traffic without a restart.
type RuntimeSettingsManager struct {
	mu       sync.RWMutex
	defaults types.RuntimeSettings
	current  types.RuntimeSettings
}

// NewRuntimeSettingsManager seeds the runtime settings from the env-derived
// defaults held by the configuration manager.
func NewRuntimeSettingsManager(configManager types.ConfigManager) *RuntimeSettingsManager {
	defaults := configManager.GetRuntimeDefaults()
	return &RuntimeSettingsManager{
		defaults: defaults,
		current:  defaults,
	}
}

// Snapshot returns a copy of the current settings.
func (m *RuntimeSettingsManager) Snapshot() types.RuntimeSettings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// APIToken returns the live shared-secret token. Empty means auth is disabled.
func (m *RuntimeSettingsManager) APIToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current.APIToken
}

// CacheSize returns the live result-cache capacity.
func (m *RuntimeSettingsManager) CacheSize() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current.CacheSize
}

// LogRequests returns whether per-request access logging is enabled.
func (m *RuntimeSettingsManager) LogRequests() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current.LogRequests
}

// Update applies a mutation to the current settings under the write lock and
// propagates the log level to logrus when it changed.
func (m *RuntimeSettingsManager) Update(mutate func(s *types.RuntimeSettings)) types.RuntimeSettings {
	m.mu.Lock()
	previousLevel := m.current.LogLevel
	mutate(&m.current)
	next := m.current
	m.mu.Unlock()

	if next.LogLevel != previousLevel {
		applyLogLevel(next.LogLevel)
	}
	return next
}

// Reset restores the env-derived defaults.
func (m *RuntimeSettingsManager) Reset() types.RuntimeSettings {
	m.mu.Lock()
	previousLevel := m.current.LogLevel
	m.current = m.defaults
	next := m.current
	m.mu.Unlock()

	if next.LogLevel != previousLevel {
		applyLogLevel(next.LogLevel)
	}
	return next
}

func applyLogLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Invalid log level %q, keeping current level", level)
		return
	}
	logrus.SetLevel(parsed)
}
