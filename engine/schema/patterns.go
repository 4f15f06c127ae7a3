package schema

import "regexp"

// Identifier and format patterns shared by validation and transformation.
var (
	// ServiceIDPattern matches lowercase snake identifiers used as service ids.
	ServiceIDPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

	// ParameterNamePattern matches parameter names; a leading digit is not allowed.
	ParameterNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

	// EmailPattern is intentionally RFC-lite; the registration service does the
	// strict check on its side.
	EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// PhonePattern accepts E.164-like input with common formatting characters.
	PhonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s\-().]{6,19}$`)
)
