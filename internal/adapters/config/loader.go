// Package config provides the runner settings loader for jig.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.SettingsLoader using an optional YAML file next to
// the manifest. Settings tune how recipes run (shell, env files, extra env);
// they never define recipes themselves.
type Loader struct{}

// NewLoader creates a new settings Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the settings file from the given manifest root.
// A missing file is not an error; defaults are returned instead.
func (l *Loader) Load(root string) (*domain.Settings, error) {
	path := filepath.Join(root, domain.SettingsFileName)

	data, err := os.ReadFile(path) //nolint:gosec // path derives from manifest discovery
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultSettings(), nil
		}
		readErr := zerr.Wrap(err, domain.ErrSettingsReadFailed.Error())
		return nil, zerr.With(readErr, "path", path)
	}

	var file SettingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		parseErr := zerr.Wrap(err, domain.ErrSettingsParseFailed.Error())
		return nil, zerr.With(parseErr, "path", path)
	}

	settings := domain.DefaultSettings()
	if len(file.Shell) > 0 {
		settings.Shell = file.Shell
	}
	if len(file.Dotenv) > 0 {
		settings.Dotenv = file.Dotenv
	}
	if len(file.Env) > 0 {
		settings.Env = file.Env
	}

	return settings, nil
}
