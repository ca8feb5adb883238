package ports

import "go.trai.ch/jig/internal/core/domain"

// EnvironmentLoader defines the interface for assembling the environment
// commands inherit.
//
//go:generate mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type EnvironmentLoader interface {
	// Environ returns the merged environment in "KEY=VALUE" form: the
	// process environment, then the settings' env files loaded from root,
	// then the settings' env map, later entries overriding earlier ones.
	Environ(root string, settings *domain.Settings) ([]string, error)
}
