package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jig/internal/adapters/config"
	"go.trai.ch/jig/internal/core/domain"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	settings, err := config.NewLoader().Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, []string{"sh", "-cu"}, settings.Shell)
	assert.Equal(t, []string{domain.DotenvFileName}, settings.Dotenv)
	assert.Empty(t, settings.Env)
}

func TestLoad_Success(t *testing.T) {
	content := `
shell: ["bash", "-euo", "pipefail", "-c"]
dotenv: [".env", ".env.local"]
env:
  CI: "true"
`
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, domain.SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	settings, err := config.NewLoader().Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, []string{"bash", "-euo", "pipefail", "-c"}, settings.Shell)
	assert.Equal(t, []string{".env", ".env.local"}, settings.Dotenv)
	assert.Equal(t, map[string]string{"CI": "true"}, settings.Env)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, domain.SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("env:\n  FOO: bar\n"), 0o600))

	settings, err := config.NewLoader().Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, []string{"sh", "-cu"}, settings.Shell)
	assert.Equal(t, "bar", settings.Env["FOO"])
}

func TestLoad_Malformed(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, domain.SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("shell: [unclosed\n"), 0o600))

	_, err := config.NewLoader().Load(tmpDir)
	require.Error(t, err)
}
