// Package container assembles the dependency injection graph.
package container

import (
	"trans-gate/internal/app"
	"trans-gate/internal/cache"
	"trans-gate/internal/config"
	"trans-gate/internal/engine"
	"trans-gate/internal/handler"
	"trans-gate/internal/router"
	"trans-gate/internal/services"
	"trans-gate/internal/types"

	"go.uber.org/dig"
)

// BuildContainer creates and configures the dig container with all providers.
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []any{
		config.NewRuntimeSettingsManager,
		cache.NewResultCache,
		services.NewTranslateService,
		handler.NewServer,
		router.NewRouter,
		app.NewApp,
	}

	if err := container.Provide(config.NewManager, dig.As(new(types.ConfigManager))); err != nil {
		return nil, err
	}
	if err := container.Provide(engine.NewRemoteEngine, dig.As(new(engine.Engine))); err != nil {
		return nil, err
	}
	if err := container.Provide(engine.NewLinguaDetector, dig.As(new(engine.Detector))); err != nil {
		return nil, err
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	return container, nil
}
