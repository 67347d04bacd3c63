package pipeline

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"go.codegraph.dev/jsoncodegen/backend"
	"go.codegraph.dev/jsoncodegen/names"
)

// RunConfig holds per-run overrides layered on top of a backend's own
// identifier rules: additional reserved identifiers, a maximum identifier
// length, and a casing convention. Casing only selects the form a
// candidate is measured in against the length limit and the reserved
// list; it does not change how a backend cases the identifiers it prints.
// Parsed from the file named by the --config flag.
type RunConfig struct {
	Casing              string   `yaml:"casing"`
	ReservedIdentifiers []string `yaml:"reservedIdentifiers"`
	MaxIdentifierLength int      `yaml:"maxIdentifierLength"`
}

// LoadRunConfig parses a YAML run configuration.
func LoadRunConfig(data []byte) (*RunConfig, error) {
	var rc RunConfig

	if err := yaml.Unmarshal(data, &rc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}

	switch rc.Casing {
	case "", "pascal", "camel", "snake":
	default:
		return nil, fmt.Errorf("%w: unknown casing %q", ErrInvalidOption, rc.Casing)
	}

	return &rc, nil
}

// applyCasing renders name under the configured casing convention, or
// leaves it unchanged when none is set.
func (rc *RunConfig) applyCasing(name string) string {
	switch rc.Casing {
	case "pascal":
		return backend.PascalCase(name)
	case "camel":
		return backend.CamelCase(name)
	case "snake":
		return backend.SnakeCase(name)
	default:
		return name
	}
}

// wrap layers this run config's reserved-identifier and length limits on
// top of a backend's own Preference, without altering the backend's
// underlying legality rules.
func (rc *RunConfig) wrap(inner names.Preference) names.Preference {
	reserved := make(map[string]bool, len(rc.ReservedIdentifiers))
	for _, r := range rc.ReservedIdentifiers {
		reserved[r] = true
	}

	return runConfigPreference{inner: inner, rc: rc, reserved: reserved}
}

type runConfigPreference struct {
	inner    names.Preference
	rc       *RunConfig
	reserved map[string]bool
}

func (p runConfigPreference) IsLegal(name string) bool {
	cased := p.rc.applyCasing(name)

	if p.rc.MaxIdentifierLength > 0 && len(cased) > p.rc.MaxIdentifierLength {
		return false
	}

	if p.reserved[name] || p.reserved[cased] {
		return false
	}

	return p.inner.IsLegal(name)
}

func (p runConfigPreference) Prefer(a, b string) bool {
	return p.inner.Prefer(a, b)
}
