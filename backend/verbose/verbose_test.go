package verbose_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"go.codegraph.dev/jsoncodegen/backend/verbose"
	"go.codegraph.dev/jsoncodegen/internal/goldentest"
	"go.codegraph.dev/jsoncodegen/names"
	"go.codegraph.dev/jsoncodegen/schema"
	"go.codegraph.dev/jsoncodegen/typegraph"
)

func emit(t *testing.T, input string) string {
	t.Helper()

	ft, err := schema.FromJSON([]byte(input))
	require.NoError(t, err)

	g := typegraph.Build(ft).Reduce()

	be := verbose.New()
	registry := names.AssignWithRootAliases(g, be.Preference(), "Root")

	var buf bytes.Buffer

	require.NoError(t, be.Emit(g, registry, &buf))

	return buf.String()
}

func TestEmitObjectWithNullField(t *testing.T) {
	t.Parallel()

	got := emit(t, `{"x": 1, "y": null}`)
	goldentest.Assert(t, "testdata/scenario1_object.golden", got)
}

func TestEmitUnionOfPrimitives(t *testing.T) {
	t.Parallel()

	got := emit(t, `[1, "a", 2]`)
	goldentest.Assert(t, "testdata/scenario4_union.golden", got)
}

func TestEmitSelfReferentialLinkedList(t *testing.T) {
	t.Parallel()

	got := emit(t, `[{"val": 1, "next": null}, {"val": 1, "next": {"val": 2, "next": null}}]`)
	goldentest.Assert(t, "testdata/scenario3_linked_list.golden", got)
}
