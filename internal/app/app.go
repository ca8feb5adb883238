// Package app implements the application layer for jig.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/jig/internal/core/ports"
	"go.trai.ch/jig/internal/engine/dispatch"
	"go.trai.ch/jig/internal/ui/output"
	"go.trai.ch/jig/internal/ui/style"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	manifests  ports.ManifestLoader
	settings   ports.SettingsLoader
	environ    ports.EnvironmentLoader
	dispatcher *dispatch.Dispatcher
	logger     ports.Logger
	stdout     io.Writer
	stderr     io.Writer
}

// New creates a new App instance.
func New(
	manifests ports.ManifestLoader,
	settings ports.SettingsLoader,
	environ ports.EnvironmentLoader,
	dispatcher *dispatch.Dispatcher,
	log ports.Logger,
) *App {
	return &App{
		manifests:  manifests,
		settings:   settings,
		environ:    environ,
		dispatcher: dispatcher,
		logger:     log,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
}

// WithStreams overrides the output streams commands and the listing write
// to. Used for testing.
func (a *App) WithStreams(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// Options configuration for Run and List.
type Options struct {
	// Manifest overrides manifest discovery with an explicit path.
	Manifest string
}

// load resolves the manifest path, parses the registry and returns it
// together with the manifest root directory.
func (a *App) load(opts Options) (*domain.Registry, string, error) {
	if opts.Manifest != "" {
		reg, err := a.manifests.LoadFile(opts.Manifest)
		if err != nil {
			return nil, "", err
		}
		root := filepath.Dir(opts.Manifest)
		return reg, root, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", zerr.Wrap(err, "failed to get working directory")
	}

	root, err := a.manifests.DiscoverRoot(cwd)
	if err != nil {
		return nil, "", err
	}

	reg, err := a.manifests.LoadFile(filepath.Join(root, domain.ManifestFileName))
	if err != nil {
		return nil, "", err
	}

	return reg, root, nil
}

// Run dispatches the named recipe: dependency closure first, then the
// recipe's own body, stopping at the first failing command.
func (a *App) Run(ctx context.Context, recipe string, opts Options) error {
	registry, root, err := a.load(opts)
	if err != nil {
		return err
	}

	settings, err := a.settings.Load(root)
	if err != nil {
		return err
	}

	environ, err := a.environ.Environ(root, settings)
	if err != nil {
		return err
	}

	return a.dispatcher.Run(ctx, registry, &dispatch.Invocation{
		Recipe: recipe,
		Dir:    root,
		Shell:  settings.Shell,
		Env:    environ,
		Stdout: a.stdout,
		Stderr: a.stderr,
	})
}

// List writes the recipe names and descriptions to stdout in declaration
// order, marking the default recipe.
func (a *App) List(_ context.Context, opts Options) error {
	registry, _, err := a.load(opts)
	if err != nil {
		return err
	}

	out := output.New(a.stdout)
	name := func(s string) string {
		return out.String(s).Foreground(termenv.RGBColor(string(style.Iris))).String()
	}
	doc := func(s string) string {
		return out.String(s).Foreground(termenv.RGBColor(string(style.Slate))).String()
	}

	width := 0
	for _, n := range registry.Names() {
		if len(n) > width {
			width = len(n)
		}
	}

	fmt.Fprintln(a.stdout, "Available recipes:")
	for recipe := range registry.Recipes() {
		n := recipe.Name.String()
		line := "  " + name(n) + strings.Repeat(" ", width-len(n))
		if recipe.Doc != "" {
			line += "  " + doc(recipe.Doc)
		}
		if n == registry.Default() {
			line += " " + doc("(default)")
		}
		fmt.Fprintln(a.stdout, line)
	}

	return nil
}
