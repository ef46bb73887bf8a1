package ports

import "go.trai.ch/routelens/internal/core/domain"

// ConfigLoader defines the interface for loading workspace settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings of the workspace rooted at workspace.
	// A workspace without a config file gets domain.DefaultSettings.
	Load(workspace string) (domain.Settings, error)
}
