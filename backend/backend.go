package backend

import (
	"errors"
	"io"

	"go.codegraph.dev/jsoncodegen/names"
	"go.codegraph.dev/jsoncodegen/typegraph"
)

// ErrWriteOutput wraps a failure writing emitted source to the caller's
// byte sink, the only way Emit can fail.
var ErrWriteOutput = errors.New("write output")

// Backend emits source code for one target language from a reduced
// TypeGraph and the NameRegistry assigned to it.
type Backend interface {
	// Name is the selector this backend is registered and looked up under
	// (the --lang value).
	Name() string

	// Preference supplies the name registry's legality predicate and
	// tie-break ordering for this backend's identifier rules.
	Preference() names.Preference

	// Emit writes syntactically valid target-language source for g to w.
	// Errors surface as I/O failures from w.
	Emit(g *typegraph.Graph, registry names.Registry, w io.Writer) error
}

// Resolve returns the identifier assigned to id in registry, falling back
// to a deterministic structural name when the matching did not cover it.
func Resolve(g *typegraph.Graph, registry names.Registry, id typegraph.TypeId) string {
	if name, ok := registry[id]; ok {
		return name
	}

	return names.FallbackName(g, id)
}
