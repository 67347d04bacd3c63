package typegraph

// children returns the TypeIds directly referenced from td's recursive
// positions.
func children(td TypeDef) []TypeId {
	switch v := td.(type) {
	case Array:
		return []TypeId{v.Elem}

	case Optional:
		return []TypeId{v.Elem}

	case Object:
		ids := make([]TypeId, len(v.Fields))
		for i, f := range v.Fields {
			ids[i] = f.TypeID
		}

		return ids

	case Union:
		return v.Members
	}

	return nil
}

// Reachable returns the set of TypeIds reachable from g.Root via recursive
// position traversal, including Root itself. A graph whose Nodes map
// contains an entry not in this set violates the reachability invariant.
func (g *Graph) Reachable() map[TypeId]bool {
	seen := map[TypeId]bool{}

	var visit func(id TypeId)

	visit = func(id TypeId) {
		if seen[id] {
			return
		}

		seen[id] = true

		for _, child := range children(g.Nodes[id]) {
			visit(child)
		}
	}

	visit(g.Root)

	return seen
}
