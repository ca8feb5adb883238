package domain

// Settings are the runner-level options read from the optional settings file
// next to the manifest. The zero value is not usable; call DefaultSettings.
type Settings struct {
	// Shell is the argv prefix each body line is appended to.
	Shell []string
	// Dotenv lists env files loaded from the manifest directory, in order.
	Dotenv []string
	// Env is merged over the inherited process environment.
	Env map[string]string
}

// DefaultSettings returns the settings used when no settings file exists.
// The -u flag makes references to unset variables an error inside body
// lines, which surfaces typos instead of silently expanding to "".
func DefaultSettings() *Settings {
	return &Settings{
		Shell:  []string{"sh", "-cu"},
		Dotenv: []string{DotenvFileName},
	}
}
