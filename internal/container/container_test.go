package container

import (
	"testing"

	"trans-gate/internal/config"
	"trans-gate/internal/services"
	"trans-gate/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildContainer(t *testing.T) {
	t.Setenv("API_TOKEN", "container-test-token")

	container, err := BuildContainer()
	require.NoError(t, err)
	require.NotNil(t, container)

	err = container.Invoke(func(configManager types.ConfigManager) {
		assert.NotNil(t, configManager)
		assert.Equal(t, 8989, configManager.GetServerConfig().Port)
	})
	require.NoError(t, err)

	err = container.Invoke(func(settings *config.RuntimeSettingsManager) {
		assert.Equal(t, "container-test-token", settings.APIToken())
	})
	require.NoError(t, err)

	err = container.Invoke(func(service *services.TranslateService, engine *gin.Engine) {
		assert.NotNil(t, service)
		assert.NotNil(t, engine)
	})
	require.NoError(t, err)
}
