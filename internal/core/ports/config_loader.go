package ports

import "go.trai.ch/antscan/internal/core/domain"

// ConfigLoader defines the interface for loading provider settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the settings file by walking up from cwd and returns the resolved settings.
	// When no settings file exists, defaults rooted at cwd are returned.
	Load(cwd string) (*domain.Settings, error)
}
