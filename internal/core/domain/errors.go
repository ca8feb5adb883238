package domain

import "go.trai.ch/zerr"

var (
	// ErrDuplicateRecipe is returned when a manifest declares the same recipe name twice.
	ErrDuplicateRecipe = zerr.New("duplicate recipe")

	// ErrMissingDependency is returned when a recipe references a dependency that is never declared.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when the dependency closure of a recipe contains a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrRecipeNotFound is returned when a requested recipe is not present in the registry.
	ErrRecipeNotFound = zerr.New("recipe not found")

	// ErrInvalidRecipeName is returned when a recipe name contains invalid characters.
	ErrInvalidRecipeName = zerr.New("recipe name can only contain alphanumeric characters, hyphens and underscores")

	// ErrManifestNotFound is returned when no jigfile is found in the working directory or any parent.
	ErrManifestNotFound = zerr.New("could not find jigfile")

	// ErrManifestReadFailed is returned when the manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestParseFailed is returned when a manifest line violates recipe syntax.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrSettingsReadFailed is returned when the settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when the settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")

	// ErrDotenvLoadFailed is returned when an env file exists but cannot be parsed.
	ErrDotenvLoadFailed = zerr.New("failed to load env file")

	// ErrCommandFailed is returned when an invoked command exits non-zero.
	// The child's exit status is attached as "exit_code" metadata.
	ErrCommandFailed = zerr.New("command failed")
)
