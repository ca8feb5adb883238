package manifest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jig/internal/adapters/manifest"
	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestParse_Success(t *testing.T) {
	src := `# List available recipes.
default:
	jig list

# Upgrade locked dependencies.
upgrade:
	go get -u ./...
	go mod tidy

lint:
	golangci-lint run ./...

fmt: lint
	gofumpt -l -w .
`

	reg, err := manifest.Parse(src)
	require.NoError(t, err)

	assert.Equal(t, []string{"default", "upgrade", "lint", "fmt"}, reg.Names())
	assert.Equal(t, "default", reg.Default())

	upgrade, err := reg.Lookup("upgrade")
	require.NoError(t, err)
	assert.Equal(t, "Upgrade locked dependencies.", upgrade.Doc)
	assert.Equal(t, []string{"go get -u ./...", "go mod tidy"}, upgrade.Body)
	assert.Empty(t, upgrade.Dependencies)

	format, err := reg.Lookup("fmt")
	require.NoError(t, err)
	require.Len(t, format.Dependencies, 1)
	assert.Equal(t, "lint", format.Dependencies[0].String())
	assert.Empty(t, format.Doc)
}

func TestParse_EmptyBody(t *testing.T) {
	reg, err := manifest.Parse("noop:\n")
	require.NoError(t, err)

	rec, err := reg.Lookup("noop")
	require.NoError(t, err)
	assert.Empty(t, rec.Body)
}

func TestParse_MissingDependency(t *testing.T) {
	src := "lint: missing\n\tgolangci-lint run ./...\n"

	_, err := manifest.Parse(src)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingDependency)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "missing", zErr.Metadata()["missing_dependency"])
}

func TestParse_DuplicateRecipe(t *testing.T) {
	src := "lint:\n\techo one\n\nlint:\n\techo two\n"

	_, err := manifest.Parse(src)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateRecipe)
}

func TestParse_HeaderWithoutColon(t *testing.T) {
	_, err := manifest.Parse("lint\n\techo hi\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrManifestParseFailed)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, 1, zErr.Metadata()["line"])
}

func TestParse_IndentedLineOutsideBlock(t *testing.T) {
	_, err := manifest.Parse("\techo hi\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrManifestParseFailed)
}

func TestParse_InvalidRecipeName(t *testing.T) {
	_, err := manifest.Parse("bad name:\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRecipeName)
}

func TestParse_BlankLineDetachesDoc(t *testing.T) {
	src := "# A stray comment.\n\nlint:\n\techo hi\n"

	reg, err := manifest.Parse(src)
	require.NoError(t, err)

	rec, err := reg.Lookup("lint")
	require.NoError(t, err)
	assert.Empty(t, rec.Doc)
}

func TestParse_BodyCommentsIgnored(t *testing.T) {
	src := "lint:\n\t# not a command\n\techo hi\n"

	reg, err := manifest.Parse(src)
	require.NoError(t, err)

	rec, err := reg.Lookup("lint")
	require.NoError(t, err)
	assert.Equal(t, []string{"echo hi"}, rec.Body)
}

func TestParse_MultiLineDoc(t *testing.T) {
	src := "# First line.\n# Second line.\nlint:\n\techo hi\n"

	reg, err := manifest.Parse(src)
	require.NoError(t, err)

	rec, err := reg.Lookup("lint")
	require.NoError(t, err)
	assert.Equal(t, "First line. Second line.", rec.Doc)
}

func TestParse_ForwardDependency(t *testing.T) {
	// Dependencies may reference recipes declared later in the manifest.
	src := "fmt: lint\n\techo fmt\n\nlint:\n\techo lint\n"

	reg, err := manifest.Parse(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"fmt", "lint"}, reg.Names())
}

func TestParse_CycleAccepted(t *testing.T) {
	// Cycles are a dispatch-time error, not a parse-time one.
	src := "a: b\n\techo a\n\nb: a\n\techo b\n"

	_, err := manifest.Parse(src)
	require.NoError(t, err)
}

func TestParse_Empty(t *testing.T) {
	reg, err := manifest.Parse("")
	require.NoError(t, err)
	assert.Equal(t, 0, reg.Len())
}
