package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.codegraph.dev/jsoncodegen/pipeline"
)

func TestLoadRunConfigDefaults(t *testing.T) {
	t.Parallel()

	rc, err := pipeline.LoadRunConfig([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, "", rc.Casing)
	assert.Zero(t, rc.MaxIdentifierLength)
	assert.Empty(t, rc.ReservedIdentifiers)
}

func TestLoadRunConfigValid(t *testing.T) {
	t.Parallel()

	data := []byte("casing: snake\nmaxIdentifierLength: 12\nreservedIdentifiers:\n  - type\n  - class\n")

	rc, err := pipeline.LoadRunConfig(data)
	require.NoError(t, err)
	assert.Equal(t, "snake", rc.Casing)
	assert.Equal(t, 12, rc.MaxIdentifierLength)
	assert.Equal(t, []string{"type", "class"}, rc.ReservedIdentifiers)
}

func TestLoadRunConfigUnknownCasing(t *testing.T) {
	t.Parallel()

	_, err := pipeline.LoadRunConfig([]byte("casing: kebab\n"))
	assert.ErrorIs(t, err, pipeline.ErrInvalidOption)
}

func TestLoadRunConfigInvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := pipeline.LoadRunConfig([]byte("casing: [this is not a string\n"))
	assert.ErrorIs(t, err, pipeline.ErrInvalidOption)
}
