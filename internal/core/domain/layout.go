package domain

const (
	// ManifestFileName is the manifest file jig looks for, walking up from the working directory.
	ManifestFileName = "jigfile"

	// SettingsFileName is the optional runner settings file, looked up next to the manifest.
	SettingsFileName = ".jig.yaml"

	// DotenvFileName is the env file loaded from the manifest directory before dispatch.
	DotenvFileName = ".env"
)
