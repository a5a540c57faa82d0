package config

import (
	"testing"

	"trans-gate/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManagerForTest(t *testing.T) *Manager {
	t.Helper()
	t.Setenv("API_TOKEN", "startup-token")
	t.Setenv("CACHE_SIZE", "500")
	t.Setenv("LOG_REQUESTS", "true")
	manager, err := NewManager()
	require.NoError(t, err)
	return manager
}

func TestRuntimeSettingsDefaults(t *testing.T) {
	settings := NewRuntimeSettingsManager(newManagerForTest(t))

	assert.Equal(t, "startup-token", settings.APIToken())
	assert.Equal(t, 500, settings.CacheSize())
	assert.True(t, settings.LogRequests())
}

func TestRuntimeSettingsUpdate(t *testing.T) {
	settings := NewRuntimeSettingsManager(newManagerForTest(t))

	updated := settings.Update(func(s *types.RuntimeSettings) {
		s.APIToken = "rotated"
		s.CacheSize = 50
	})

	assert.Equal(t, "rotated", updated.APIToken)
	assert.Equal(t, 50, updated.CacheSize)
	assert.Equal(t, "rotated", settings.APIToken())
	assert.Equal(t, 50, settings.CacheSize())
	// untouched fields keep their values
	assert.True(t, settings.LogRequests())
}

func TestRuntimeSettingsReset(t *testing.T) {
	settings := NewRuntimeSettingsManager(newManagerForTest(t))

	settings.Update(func(s *types.RuntimeSettings) {
		s.APIToken = "rotated"
		s.CacheSize = 1
		s.LogRequests = false
	})

	restored := settings.Reset()

	assert.Equal(t, "startup-token", restored.APIToken)
	assert.Equal(t, 500, restored.CacheSize)
	assert.True(t, restored.LogRequests)
}

func TestSnapshotIsACopy(t *testing.T) {
	settings := NewRuntimeSettingsManager(newManagerForTest(t))

	snapshot := settings.Snapshot()
	snapshot.APIToken = "mutated"

	assert.Equal(t, "startup-token", settings.APIToken())
}
