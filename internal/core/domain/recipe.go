package domain

// Recipe is a named unit of work: a dependency list and a body of shell
// command lines run in order. It uses InternedString for names because the
// same name appears in the registry, in dependency lists and in log output.
type Recipe struct {
	Name         InternedString
	Doc          string
	Dependencies []InternedString
	Body         []string
}
