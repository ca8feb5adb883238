// Package manifest provides the jigfile loader for jig.
//
// A jigfile is a sequence of recipe blocks. A block starts with a header
// line ("name: dep1 dep2"), followed by indented body lines that are passed
// verbatim to the shell. Comment lines start with '#'; comments directly
// above a header become the recipe's description.
package manifest

import (
	"regexp"
	"strings"

	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/zerr"
)

var validRecipeNameRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// Parse parses manifest text into a registry.
//
// Parse is strict: duplicate recipe names and dependencies on undeclared
// recipes are load-time errors, so nothing executes against a manifest that
// could not mean what its author wrote. Cycles are not checked here; the
// dispatcher detects them on the path it actually resolves.
func Parse(src string) (*domain.Registry, error) {
	reg := domain.NewRegistry()

	type pendingRecipe struct {
		recipe domain.Recipe
		line   int
	}

	var blocks []pendingRecipe
	var current *pendingRecipe
	var doc []string

	flush := func() error {
		if current == nil {
			return nil
		}
		blocks = append(blocks, *current)
		if err := reg.Add(&current.recipe); err != nil {
			return zerr.With(err, "line", current.line)
		}
		current = nil
		return nil
	}

	for i, raw := range strings.Split(src, "\n") {
		lineno := i + 1
		line := strings.TrimRight(raw, " \t")
		trimmed := strings.TrimLeft(line, " \t")
		indented := len(trimmed) < len(line)

		switch {
		case trimmed == "":
			// Blank lines detach any pending comment from the next header.
			doc = nil

		case strings.HasPrefix(trimmed, "#"):
			if current == nil || !indented {
				doc = append(doc, strings.TrimSpace(strings.TrimPrefix(trimmed, "#")))
			}
			// Indented comments inside a body are discarded, not executed.

		case indented:
			if current == nil {
				err := zerr.With(domain.ErrManifestParseFailed, "reason", "indented line outside a recipe block")
				return nil, zerr.With(err, "line", lineno)
			}
			current.recipe.Body = append(current.recipe.Body, trimmed)

		default:
			if err := flush(); err != nil {
				return nil, err
			}
			rec, err := parseHeader(trimmed, lineno)
			if err != nil {
				return nil, err
			}
			rec.Doc = strings.Join(doc, " ")
			doc = nil
			current = &pendingRecipe{recipe: rec, line: lineno}
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}

	// Second pass: every dependency must name a declared recipe.
	for _, b := range blocks {
		for _, dep := range b.recipe.Dependencies {
			if _, err := reg.Lookup(dep.String()); err != nil {
				pErr := zerr.With(domain.ErrMissingDependency, "line", b.line)
				pErr = zerr.With(pErr, "recipe", b.recipe.Name.String())
				return nil, zerr.With(pErr, "missing_dependency", dep.String())
			}
		}
	}

	return reg, nil
}

// parseHeader parses a "name: dep1 dep2" header line.
func parseHeader(line string, lineno int) (domain.Recipe, error) {
	name, deps, found := strings.Cut(line, ":")
	if !found {
		err := zerr.With(domain.ErrManifestParseFailed, "reason", "expected 'name: [dependencies...]' header")
		return domain.Recipe{}, zerr.With(err, "line", lineno)
	}

	name = strings.TrimSpace(name)
	if !validRecipeNameRegex.MatchString(name) {
		err := zerr.With(domain.ErrInvalidRecipeName, "recipe", name)
		return domain.Recipe{}, zerr.With(err, "line", lineno)
	}

	var depNames []domain.InternedString
	for _, dep := range strings.Fields(deps) {
		if !validRecipeNameRegex.MatchString(dep) {
			err := zerr.With(domain.ErrInvalidRecipeName, "dependency", dep)
			return domain.Recipe{}, zerr.With(err, "line", lineno)
		}
		depNames = append(depNames, domain.NewInternedString(dep))
	}

	return domain.Recipe{
		Name:         domain.NewInternedString(name),
		Dependencies: depNames,
	}, nil
}
