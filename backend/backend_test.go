package backend_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.codegraph.dev/jsoncodegen/backend"
	"go.codegraph.dev/jsoncodegen/names"
	"go.codegraph.dev/jsoncodegen/schema"
	"go.codegraph.dev/jsoncodegen/typegraph"
)

type stubBackend struct{ name string }

func (s stubBackend) Name() string                                          { return s.name }
func (s stubBackend) Preference() names.Preference                         { return nil }
func (s stubBackend) Emit(*typegraph.Graph, names.Registry, io.Writer) error { return nil }

func TestRegisterAndLookup(t *testing.T) {
	backend.Register("stub-test-backend", func() backend.Backend { return stubBackend{name: "stub-test-backend"} })

	b, ok := backend.Lookup("stub-test-backend")
	require.True(t, ok)
	assert.Equal(t, "stub-test-backend", b.Name())

	_, ok = backend.Lookup("does-not-exist")
	assert.False(t, ok)
}

func TestResolveFallsBackWhenUnassigned(t *testing.T) {
	t.Parallel()

	ft, err := schema.FromJSON([]byte(`{"x": 1}`))
	require.NoError(t, err)

	g := typegraph.Build(ft).Reduce()

	// Empty registry: nothing is assigned, every lookup falls back.
	name := backend.Resolve(g, names.Registry{}, g.Root)
	assert.Equal(t, fmt.Sprintf("Type%d", g.Root), name)
}

func TestResolveUsesRegisteredName(t *testing.T) {
	t.Parallel()

	ft, err := schema.FromJSON([]byte(`{"x": 1}`))
	require.NoError(t, err)

	g := typegraph.Build(ft).Reduce()

	registry := names.Registry{g.Root: "Root"}

	assert.Equal(t, "Root", backend.Resolve(g, registry, g.Root))
}
