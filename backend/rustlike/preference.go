package rustlike

import "go.codegraph.dev/jsoncodegen/backend"

// reservedTypeNames are the wrapper identifiers this backend's Emit
// synthesizes directly (container and fallback types); a candidate that
// would collide with one after casing is rejected so the matching never
// hands a node a name Emit would have to special-case.
var reservedTypeNames = map[string]bool{
	"Option":   true,
	"Vec":      true,
	"String":   true,
	"Value":    true,
	"Box":      true,
	"Document": true,
}

// rustKeywords are reserved words that cannot be used as Rust identifiers.
// Only the ones plausible after PascalCase conversion of a JSON field name
// are listed; the full keyword list is longer but irrelevant here since
// these are type names, not variable names.
var rustKeywords = map[string]bool{
	"Self": true,
	"Type": true,
	"Fn":   true,
	"Impl": true,
	"Trait": true,
}

// preference implements names.Preference for the Rust-like backend: a
// candidate is legal if it converts to a non-empty Rust type identifier
// that isn't reserved, and shorter, lexicographically earlier names are
// preferred for readability.
type preference struct{}

func (preference) IsLegal(name string) bool {
	pascal := backend.PascalCase(name)
	if pascal == "" {
		return false
	}

	return !reservedTypeNames[pascal] && !rustKeywords[pascal]
}

func (preference) Prefer(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}
