package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestRegistry_Add_Duplicate(t *testing.T) {
	r := domain.NewRegistry()
	rec := domain.Recipe{Name: domain.NewInternedString("lint")}

	if err := r.Add(&rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := r.Add(&rec)
	if err == nil {
		t.Fatal("expected error when adding duplicate recipe, got nil")
	}
	if !errors.Is(err, domain.ErrDuplicateRecipe) {
		t.Errorf("expected ErrDuplicateRecipe, got %v", err)
	}

	var zErr *zerr.Error
	if !errors.As(err, &zErr) {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	if name, ok := zErr.Metadata()["recipe"].(string); !ok || name != "lint" {
		t.Errorf("expected metadata recipe=lint, got %v", zErr.Metadata()["recipe"])
	}
}

func TestRegistry_Lookup(t *testing.T) {
	r := domain.NewRegistry()
	rec := domain.Recipe{
		Name: domain.NewInternedString("fmt"),
		Body: []string{"gofumpt -l -w ."},
	}
	if err := r.Add(&rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := r.Lookup("fmt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Body) != 1 || got.Body[0] != "gofumpt -l -w ." {
		t.Errorf("unexpected body: %v", got.Body)
	}

	_, err = r.Lookup("missing")
	if !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Errorf("expected ErrRecipeNotFound, got %v", err)
	}
}

func TestRegistry_DeclarationOrder(t *testing.T) {
	r := domain.NewRegistry()
	for _, name := range []string{"default", "upgrade", "lint", "fmt"} {
		rec := domain.Recipe{Name: domain.NewInternedString(name)}
		if err := r.Add(&rec); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	want := []string{"default", "upgrade", "lint", "fmt"}
	got := r.Names()
	if len(got) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	if r.Default() != "default" {
		t.Errorf("expected first-declared recipe as default, got %s", r.Default())
	}

	// Recipes() yields the same order as Names()
	i := 0
	for rec := range r.Recipes() {
		if rec.Name.String() != want[i] {
			t.Errorf("iterator position %d: expected %s, got %s", i, want[i], rec.Name.String())
		}
		i++
	}
}

func TestRegistry_Empty(t *testing.T) {
	r := domain.NewRegistry()
	if r.Default() != "" {
		t.Errorf("expected empty default, got %q", r.Default())
	}
	if r.Len() != 0 {
		t.Errorf("expected empty registry, got %d", r.Len())
	}
}
