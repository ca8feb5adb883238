package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

const (
	// ExitOK is returned when every command in the resolved sequence exited 0.
	ExitOK = 0
	// ExitFailure is the generic code for internal runner errors.
	ExitFailure = 1
	// ExitUsage is the distinguished code for manifest, lookup and cycle errors.
	ExitUsage = 2
)

// ExitStatus maps an error to the process exit code.
//
// A failed command carries the child's exit status verbatim in "exit_code"
// metadata, so callers can tell which external tool failed. Manifest,
// lookup and cycle errors share a distinguished code to keep the runner's
// own failures apart from those of the tools it invokes.
func ExitStatus(err error) int {
	if err == nil {
		return ExitOK
	}

	if code, ok := commandExitCode(err); ok && code > 0 {
		return code
	}

	switch {
	case errors.Is(err, ErrManifestNotFound),
		errors.Is(err, ErrManifestParseFailed),
		errors.Is(err, ErrMissingDependency),
		errors.Is(err, ErrDuplicateRecipe),
		errors.Is(err, ErrInvalidRecipeName),
		errors.Is(err, ErrRecipeNotFound),
		errors.Is(err, ErrCycleDetected):
		return ExitUsage
	}

	return ExitFailure
}

// commandExitCode walks the error chain looking for "exit_code" metadata.
// Metadata lives on the zerr error that recorded it, which may be wrapped
// several layers deep by the time it reaches main.
func commandExitCode(err error) (int, bool) {
	for err != nil {
		var zErr *zerr.Error
		if !errors.As(err, &zErr) {
			return 0, false
		}
		if code, ok := zErr.Metadata()["exit_code"].(int); ok {
			return code, true
		}
		err = errors.Unwrap(zErr)
	}
	return 0, false
}
