package names_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.codegraph.dev/jsoncodegen/names"
	"go.codegraph.dev/jsoncodegen/schema"
	"go.codegraph.dev/jsoncodegen/typegraph"
)

// anyLegal accepts any non-empty name and breaks ties lexicographically.
type anyLegal struct{}

func (anyLegal) IsLegal(name string) bool { return name != "" }
func (anyLegal) Prefer(a, b string) bool  { return a < b }

// illegalNames rejects a fixed set of reserved words, otherwise behaving
// like anyLegal.
type illegalNames struct {
	reserved map[string]bool
}

func (p illegalNames) IsLegal(name string) bool { return name != "" && !p.reserved[name] }
func (illegalNames) Prefer(a, b string) bool    { return a < b }

func buildReduced(t *testing.T, input string) *typegraph.Graph {
	t.Helper()

	ft, err := schema.FromJSON([]byte(input))
	require.NoError(t, err)

	return typegraph.Build(ft).Reduce()
}

func TestCollectCandidatesUnwrapsArrayAndOptional(t *testing.T) {
	t.Parallel()

	// "children" references the tree node through an Array wrapper.
	g := buildReduced(t, `{"tree": {"name": "r", "children": [{"name": "c", "children": []}]}}`)

	candidates := names.CollectCandidates(g)

	var found bool

	for _, cs := range candidates {
		for _, c := range cs {
			if c == "children" {
				found = true
			}
		}
	}

	assert.True(t, found, "expected \"children\" to be collected as a candidate through its Array wrapper")
}

func TestAssignGivesEachNodeAUniqueName(t *testing.T) {
	t.Parallel()

	g := buildReduced(t, `{"a": {"x": 1}, "b": {"y": 2}}`)

	registry := names.Assign(g, anyLegal{})

	seen := map[string]bool{}

	for _, n := range registry {
		assert.False(t, seen[n], "name %q assigned to more than one node", n)
		seen[n] = true
	}

	assert.NotEmpty(t, registry)
}

func TestAssignDisplacesToCoverBothNodes(t *testing.T) {
	t.Parallel()

	// Two distinct objects ({kind: String} and {kind: Integer}) are both
	// referenced under the field name "item", and only the first of them is
	// also referenced under "other". A naive greedy assignment processing
	// nodes in ID order would give the first node "item" and leave the
	// second uncovered, even though reassigning the first node to "other"
	// covers both.
	g := buildReduced(t, `{
		"first": {"item": {"kind": "a"}, "other": {"kind": "b"}},
		"second": {"item": {"kind": 1}}
	}`)

	registry := names.Assign(g, anyLegal{})

	candidates := names.CollectCandidates(g)

	nodesNeedingNames := 0

	for id := range candidates {
		if _, ok := g.Nodes[id].(typegraph.Object); ok {
			nodesNeedingNames++
		}
	}

	covered := 0

	for id := range registry {
		if _, ok := g.Nodes[id].(typegraph.Object); ok {
			covered++
		}
	}

	assert.Equal(t, nodesNeedingNames, covered, "matching should cover every object node that has at least one candidate")
}

func TestAssignFiltersIllegalCandidates(t *testing.T) {
	t.Parallel()

	g := buildReduced(t, `{"type": {"x": 1}}`)

	pref := illegalNames{reserved: map[string]bool{"type": true}}

	registry := names.Assign(g, pref)

	for _, n := range registry {
		assert.NotEqual(t, "type", n)
	}
}

func TestFallbackName(t *testing.T) {
	t.Parallel()

	g := buildReduced(t, `{"x": 1}`)

	name := names.FallbackName(g, g.Root)
	assert.Equal(t, "Type0", name)
}

func TestAssignWithRootAliasesNamesUncoveredRoot(t *testing.T) {
	t.Parallel()

	// The root object is never referenced by any field, so plain Assign
	// leaves it without a name.
	g := buildReduced(t, `{"x": 1}`)

	plain := names.Assign(g, anyLegal{})
	_, covered := plain[g.Root]
	require.False(t, covered, "root should have no candidates without an alias")

	withAlias := names.AssignWithRootAliases(g, anyLegal{}, "Root")
	assert.Equal(t, "Root", withAlias[g.Root])
}
