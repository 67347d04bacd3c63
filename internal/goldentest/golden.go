// Package goldentest provides a byte-exact golden-file comparison helper
// for backend emission tests, adapted from magicschema's JSON-equality
// golden harness for text output where formatting itself is the thing
// under test.
package goldentest

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

// Assert compares got against the contents of goldenPath byte-for-byte.
// When -update is set, it writes got to goldenPath instead of comparing.
func Assert(t *testing.T, goldenPath string, got string) {
	t.Helper()

	if *update {
		require.NoError(t, os.WriteFile(goldenPath, []byte(got), 0o644))

		return
	}

	want, err := os.ReadFile(goldenPath)
	require.NoError(t, err, "golden file %s not found; run with -update to create", goldenPath)

	assert.Equal(t, string(want), got)
}
