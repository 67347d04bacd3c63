package names

import (
	"fmt"

	"go.codegraph.dev/jsoncodegen/typegraph"
)

// FallbackName synthesizes a deterministic structural name for a node the
// matching failed to cover, for backends to fall back to. Objects fall
// back to "Type<id>"; unions, lacking a single settled shape, fall back to
// "Unknown<id>".
func FallbackName(g *typegraph.Graph, id typegraph.TypeId) string {
	if _, ok := g.Nodes[id].(typegraph.Union); ok {
		return fmt.Sprintf("Unknown%d", id)
	}

	return fmt.Sprintf("Type%d", id)
}
