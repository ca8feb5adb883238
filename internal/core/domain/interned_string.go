package domain

import "unique"

// InternedString is a value object that wraps a unique.Handle[string].
// It is used to deduplicate frequently repeated strings like recipe names,
// which appear both as map keys and inside dependency lists.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString creates a new InternedString from a string.
// It uses the unique package to intern the string.
func NewInternedString(s string) InternedString {
	return InternedString{
		h: unique.Make(s),
	}
}

// String returns the underlying string value.
func (is InternedString) String() string {
	var zero unique.Handle[string]
	if is.h == zero {
		return ""
	}
	return is.h.Value()
}
