package config

// SettingsFile represents the structure of the optional .jig.yaml file.
type SettingsFile struct {
	// Shell is the argv prefix body lines are appended to, e.g. ["bash", "-cu"].
	Shell []string `yaml:"shell"`
	// Dotenv lists env files to load from the manifest directory.
	Dotenv []string `yaml:"dotenv"`
	// Env is merged over the inherited process environment.
	Env map[string]string `yaml:"env"`
}
