package verbose

import "go.codegraph.dev/jsoncodegen/backend"

// reservedTypeNames are the wrapper identifiers this backend's Emit
// synthesizes directly; a candidate that would collide with one after
// casing is rejected.
var reservedTypeNames = map[string]bool{
	"Object":               true,
	"List":                 true,
	"Optional":             true,
	"String":               true,
	"Long":                 true,
	"Double":               true,
	"Boolean":              true,
	"ReflectiveSerializer": true,
	"Document":             true,
}

var javaKeywords = map[string]bool{
	"Class":  true,
	"Void":   true,
	"Static": true,
	"Final":  true,
	"New":    true,
}

// preference implements names.Preference for the verbose backend.
type preference struct{}

func (preference) IsLegal(name string) bool {
	pascal := backend.PascalCase(name)
	if pascal == "" {
		return false
	}

	return !reservedTypeNames[pascal] && !javaKeywords[pascal]
}

func (preference) Prefer(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}
