package manifest

import (
	"os"
	"path/filepath"

	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/jig/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader implements ports.ManifestLoader for jigfiles on disk.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load discovers the manifest starting at cwd and parses it.
func (l *Loader) Load(cwd string) (*domain.Registry, error) {
	root, err := l.DiscoverRoot(cwd)
	if err != nil {
		return nil, err
	}
	return l.LoadFile(filepath.Join(root, domain.ManifestFileName))
}

// LoadFile parses the manifest at an explicit path.
func (l *Loader) LoadFile(path string) (*domain.Registry, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		readErr := zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
		return nil, zerr.With(readErr, "path", path)
	}

	reg, err := Parse(string(data))
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if reg.Len() == 0 {
		l.Logger.Warn("manifest declares no recipes: " + path)
	}

	return reg, nil
}

// DiscoverRoot walks up from cwd until it finds a directory containing a
// jigfile. The first hit wins, so nested projects resolve to the nearest
// manifest.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	currentDir := cwd

	for {
		manifestPath := filepath.Join(currentDir, domain.ManifestFileName)
		if _, err := os.Stat(manifestPath); err == nil {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrManifestNotFound, "cwd", cwd)
}
