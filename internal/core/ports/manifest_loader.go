// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/jig/internal/core/domain"

// ManifestLoader defines the interface for loading the recipe registry.
//
//go:generate mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load discovers the manifest starting from the given working directory
	// and returns the parsed registry.
	Load(cwd string) (*domain.Registry, error)

	// LoadFile parses the manifest at an explicit path.
	LoadFile(path string) (*domain.Registry, error)

	// DiscoverRoot walks up from cwd to the directory containing the manifest.
	DiscoverRoot(cwd string) (string, error)
}
