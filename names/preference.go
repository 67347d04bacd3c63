package names

// Preference is the backend-supplied capability the name registry consults
// during matching: it decides which candidate strings are legal
// identifiers and how ties between otherwise-equal candidates are broken.
// Both methods must be pure and total.
type Preference interface {
	// IsLegal reports whether name is a legal identifier for the backend.
	IsLegal(name string) bool

	// Prefer reports whether a should sort before b when both are legal
	// candidates for the same node. Prefer must define a total order.
	Prefer(a, b string) bool
}
