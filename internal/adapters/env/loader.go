// Package env assembles the environment inherited by invoked commands.
package env

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/zerr"
)

// Loader implements ports.EnvironmentLoader.
type Loader struct{}

// NewLoader creates a new environment Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Environ returns the merged environment in "KEY=VALUE" form.
//
// Priority, low to high: the process environment, env files from the
// manifest root in settings order, then the settings' env map. Env files
// that do not exist are skipped; files that exist but cannot be parsed are
// an error, since silently running with half an environment is worse than
// failing.
func (l *Loader) Environ(root string, settings *domain.Settings) ([]string, error) {
	envMap := make(map[string]string)
	var order []string

	set := func(k, v string) {
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for _, entry := range os.Environ() {
		if k, v, ok := strings.Cut(entry, "="); ok {
			set(k, v)
		}
	}

	for _, name := range settings.Dotenv {
		path := filepath.Join(root, name)
		vars, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			loadErr := zerr.Wrap(err, domain.ErrDotenvLoadFailed.Error())
			return nil, zerr.With(loadErr, "path", path)
		}
		for k, v := range vars {
			set(k, v)
		}
	}

	for k, v := range settings.Env {
		set(k, v)
	}

	result := make([]string, 0, len(envMap))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result, nil
}
