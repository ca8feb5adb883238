package ports

import "go.trai.ch/jig/internal/core/domain"

// SettingsLoader defines the interface for loading runner settings.
//
//go:generate mockgen -source=settings_loader.go -destination=mocks/mock_settings_loader.go -package=mocks
type SettingsLoader interface {
	// Load reads the settings file from the given manifest root.
	// A missing file is not an error; defaults are returned instead.
	Load(root string) (*domain.Settings, error)
}
