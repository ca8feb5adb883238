// Package dispatch implements recipe dispatch: dependency closure
// resolution followed by sequential execution of command bodies.
package dispatch

import (
	"context"
	"io"

	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/jig/internal/core/ports"
	"go.trai.ch/zerr"
)

// Dispatcher resolves a recipe's dependency closure and executes it.
type Dispatcher struct {
	executor ports.Executor
	logger   ports.Logger
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(executor ports.Executor, logger ports.Logger) *Dispatcher {
	return &Dispatcher{
		executor: executor,
		logger:   logger,
	}
}

// Invocation carries everything a dispatch needs besides the registry.
type Invocation struct {
	// Recipe is the requested recipe name.
	Recipe string
	// Dir is the working directory commands run in (the manifest root).
	Dir string
	// Shell is the argv prefix each body line is appended to.
	Shell []string
	// Env is the full environment commands inherit.
	Env []string
	// Stdout and Stderr receive child process output verbatim.
	Stdout io.Writer
	Stderr io.Writer
}

// Run resolves the requested recipe's dependency closure and executes every
// body line in order, one process at a time.
//
// Resolution is depth-first over declared dependency order: each distinct
// recipe is scheduled once, at its first encounter, and every dependency's
// body completes before the dependent's body starts. Execution stays
// sequential even where the graph would allow parallelism, because recipe
// bodies may have ordering-sensitive side effects.
//
// The first command to exit non-zero aborts the dispatch; already-run
// commands are not undone and the child's exit status travels up unchanged.
func (d *Dispatcher) Run(ctx context.Context, registry *domain.Registry, inv *Invocation) error {
	order, err := resolve(registry, inv.Recipe)
	if err != nil {
		return err
	}

	for _, recipe := range order {
		if err := d.runBody(ctx, &recipe, inv); err != nil {
			return err
		}
	}

	return nil
}

func (d *Dispatcher) runBody(ctx context.Context, recipe *domain.Recipe, inv *Invocation) error {
	name := recipe.Name.String()

	for _, line := range recipe.Body {
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(err, "dispatch aborted")
		}

		d.logger.Info(name + ": " + line)

		command := &domain.Command{
			Argv: append(append([]string{}, inv.Shell...), line),
			Dir:  inv.Dir,
			Env:  inv.Env,
		}

		if err := d.executor.Run(ctx, command, inv.Stdout, inv.Stderr); err != nil {
			err = zerr.With(err, "recipe", name)
			return zerr.With(err, "command", line)
		}
	}

	return nil
}

// resolve returns the dependency closure of the requested recipe in
// execution order, the requested recipe last.
//
// It is a three-color depth-first traversal: a dependency found on the
// current path means a cycle, reported with the full path before anything
// has executed.
func resolve(registry *domain.Registry, name string) ([]domain.Recipe, error) {
	requested, err := registry.Lookup(name)
	if err != nil {
		return nil, err
	}

	const (
		unvisited = 0
		visiting  = 1
		visited   = 2
	)

	order := make([]domain.Recipe, 0, registry.Len())
	state := make(map[domain.InternedString]int)
	var path []domain.InternedString

	var visit func(rec domain.Recipe) error
	visit = func(rec domain.Recipe) error {
		state[rec.Name] = visiting
		path = append(path, rec.Name)

		for _, dep := range rec.Dependencies {
			switch state[dep] {
			case visiting:
				return cycleError(path, dep)
			case unvisited:
				// The registry guarantees every dependency exists.
				depRec, _ := registry.Lookup(dep.String())
				if err := visit(depRec); err != nil {
					return err
				}
			}
		}

		state[rec.Name] = visited
		path = path[:len(path)-1]
		order = append(order, rec)
		return nil
	}

	if err := visit(requested); err != nil {
		return nil, err
	}

	return order, nil
}

// cycleError constructs an error carrying the cycle path as metadata.
func cycleError(path []domain.InternedString, dep domain.InternedString) error {
	start := 0
	for i, node := range path {
		if node == dep {
			start = i
			break
		}
	}

	cyclePath := ""
	for _, node := range path[start:] {
		cyclePath += node.String() + " -> "
	}
	cyclePath += dep.String()

	return zerr.With(domain.ErrCycleDetected, "cycle", cyclePath)
}
