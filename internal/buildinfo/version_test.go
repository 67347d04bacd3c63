package buildinfo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.codegraph.dev/jsoncodegen/internal/buildinfo"
)

func TestStringIncludesGoVersion(t *testing.T) {
	t.Parallel()

	assert.Contains(t, buildinfo.String(), buildinfo.GoVersion)
	assert.Contains(t, buildinfo.String(), buildinfo.GoOS)
}

func TestStringDefaultsToDev(t *testing.T) {
	t.Parallel()

	if buildinfo.Version != "" {
		t.Skip("Version set via ldflags for this build")
	}

	assert.Contains(t, buildinfo.String(), "dev")
}
