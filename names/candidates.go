package names

import (
	"sort"

	"go.codegraph.dev/jsoncodegen/typegraph"
)

// CollectCandidates traverses g and returns, for every object or union node,
// the raw (not yet filtered or ordered) field names under which some object
// field references it, directly or through one or more Array/Optional
// wrappers. Only nodes with at least one candidate appear in the result.
// Traversal order is deterministic: object nodes in ascending TypeId order,
// fields in their canonical (name-sorted) order.
func CollectCandidates(g *typegraph.Graph) map[typegraph.TypeId][]string {
	raw := map[typegraph.TypeId][]string{}

	ids := make([]typegraph.TypeId, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		obj, ok := g.Nodes[id].(typegraph.Object)
		if !ok {
			continue
		}

		for _, f := range obj.Fields {
			target, ok := unwrapNameable(g, f.TypeID)
			if !ok {
				continue
			}

			raw[target] = appendUnique(raw[target], f.Name)
		}
	}

	return raw
}

// unwrapNameable follows Array/Optional wrappers from id until it reaches a
// node that can carry a name (Object or Union), returning its TypeId. It
// returns false if the chain terminates in a primitive or special type.
func unwrapNameable(g *typegraph.Graph, id typegraph.TypeId) (typegraph.TypeId, bool) {
	for {
		switch v := g.Nodes[id].(type) {
		case typegraph.Array:
			id = v.Elem
		case typegraph.Optional:
			id = v.Elem
		case typegraph.Object, typegraph.Union:
			return id, true
		default:
			return 0, false
		}
	}
}

func appendUnique(ss []string, s string) []string {
	for _, existing := range ss {
		if existing == s {
			return ss
		}
	}

	return append(ss, s)
}
