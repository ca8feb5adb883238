package domain

// Command is a single external process invocation: the fully resolved argv,
// the directory to run in and the complete environment. The runner never
// interprets what the command does; it only observes the exit status.
type Command struct {
	Argv []string
	Dir  string
	Env  []string
}
