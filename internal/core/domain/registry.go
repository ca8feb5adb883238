// Package domain contains the core domain models for the recipe registry.
package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Registry holds the recipes parsed from a manifest. Declaration order is
// preserved because it determines both the listing order and the implicit
// default recipe (the first one declared). A Registry is built once at load
// time and read-only afterwards.
type Registry struct {
	recipes map[InternedString]Recipe
	order   []InternedString
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		recipes: make(map[InternedString]Recipe),
	}
}

// Add appends a recipe to the registry.
// It returns ErrDuplicateRecipe if a recipe with the same name already exists.
func (r *Registry) Add(rec *Recipe) error {
	if _, exists := r.recipes[rec.Name]; exists {
		return zerr.With(ErrDuplicateRecipe, "recipe", rec.Name.String())
	}
	r.recipes[rec.Name] = *rec
	r.order = append(r.order, rec.Name)
	return nil
}

// Lookup returns the recipe with the given name.
// It returns ErrRecipeNotFound if the name is not present.
func (r *Registry) Lookup(name string) (Recipe, error) {
	rec, exists := r.recipes[NewInternedString(name)]
	if !exists {
		return Recipe{}, zerr.With(ErrRecipeNotFound, "recipe", name)
	}
	return rec, nil
}

// Names returns the recipe names in declaration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	for i, name := range r.order {
		names[i] = name.String()
	}
	return names
}

// Default returns the name of the first-declared recipe, or "" for an empty
// registry. First-declared wins; the rule is stored structurally in the
// insertion order rather than relying on map iteration.
func (r *Registry) Default() string {
	if len(r.order) == 0 {
		return ""
	}
	return r.order[0].String()
}

// Len returns the number of recipes in the registry.
func (r *Registry) Len() int {
	return len(r.order)
}

// Recipes returns an iterator that yields recipes in declaration order.
func (r *Registry) Recipes() iter.Seq[Recipe] {
	return func(yield func(Recipe) bool) {
		for _, name := range r.order {
			if !yield(r.recipes[name]) {
				return
			}
		}
	}
}
