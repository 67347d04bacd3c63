package names

import (
	"sort"

	"go.codegraph.dev/jsoncodegen/typegraph"
)

// Registry is the partial mapping from TypeId to the identifier assigned to
// it. Only object and union nodes that the matching could cover appear
// here.
type Registry map[typegraph.TypeId]string

// Assign collects candidate names from g, filters and orders them through
// pref, and solves a maximum bipartite matching between nodes and
// candidate names. Each returned name is claimed by exactly one node.
func Assign(g *typegraph.Graph, pref Preference) Registry {
	return assign(g, pref, nil)
}

// AssignWithRootAliases behaves like Assign, but first prepends aliases to
// the candidate list of the nameable node the root resolves to (unwrapping
// through Array/Optional exactly as field candidate collection does), so
// the matching can request a distinct, backend-chosen name for the root
// even when no field references it. A backend uses this when the root's
// natural name would collide with a reserved wrapper identifier the
// emitter synthesizes, offering alternatives instead of letting the root
// fall back to a structural name.
func AssignWithRootAliases(g *typegraph.Graph, pref Preference, aliases ...string) Registry {
	return assign(g, pref, aliases)
}

func assign(g *typegraph.Graph, pref Preference, rootAliases []string) Registry {
	raw := CollectCandidates(g)

	if len(rootAliases) > 0 {
		if target, ok := unwrapNameable(g, g.Root); ok {
			raw[target] = append(append([]string{}, rootAliases...), raw[target]...)
		}
	}

	nodes := make([]typegraph.TypeId, 0, len(raw))
	for id := range raw {
		nodes = append(nodes, id)
	}

	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	candidates := make(map[typegraph.TypeId][]string, len(raw))

	for id, names := range raw {
		legal := make([]string, 0, len(names))

		for _, n := range names {
			if pref.IsLegal(n) {
				legal = append(legal, n)
			}
		}

		sort.Slice(legal, func(i, j int) bool { return pref.Prefer(legal[i], legal[j]) })

		candidates[id] = legal
	}

	m := &matcher{
		candidates: candidates,
		holderOf:   map[string]typegraph.TypeId{},
		assignedTo: map[typegraph.TypeId]string{},
	}

	for _, id := range nodes {
		visited := map[string]bool{}
		m.tryAssign(id, visited)
	}

	// Read the final assignment only after every node has been tried: a
	// later augmenting path may move an earlier node onto another name.
	registry := make(Registry, len(m.assignedTo))
	for id, name := range m.assignedTo {
		registry[id] = name
	}

	return registry
}

type matcher struct {
	candidates map[typegraph.TypeId][]string
	holderOf   map[string]typegraph.TypeId // candidate name -> node currently claiming it
	assignedTo map[typegraph.TypeId]string // node -> name it currently claims
}

// tryAssign attempts to claim a candidate name for node, displacing an
// existing holder to one of its other candidates if necessary (Kuhn's
// augmenting-path DFS). visited is reset by the caller for each top-level
// attempt.
func (m *matcher) tryAssign(node typegraph.TypeId, visited map[string]bool) bool {
	for _, cand := range m.candidates[node] {
		if visited[cand] {
			continue
		}

		visited[cand] = true

		holder, taken := m.holderOf[cand]
		if !taken || m.tryAssign(holder, visited) {
			// If taken, the recursive call above has already moved holder
			// onto a different candidate and updated assignedTo for it.
			m.holderOf[cand] = node
			m.assignedTo[node] = cand

			return true
		}
	}

	return false
}
