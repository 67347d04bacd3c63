package backend

import "sort"

var registry = map[string]func() Backend{}

// Register adds a backend constructor under name. Backend subpackages call
// this from their own init so cmd/jsoncodegen only needs a blank import to
// make a backend selectable.
func Register(name string, constructor func() Backend) {
	registry[name] = constructor
}

// Lookup constructs the backend registered under name.
func Lookup(name string) (Backend, bool) {
	constructor, ok := registry[name]
	if !ok {
		return nil, false
	}

	return constructor(), true
}

// Names returns the sorted list of registered backend selectors, used for
// --lang shell completion and error messages.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
