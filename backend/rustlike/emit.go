package rustlike

import (
	"fmt"
	"io"
	"sort"

	"go.codegraph.dev/jsoncodegen/backend"
	"go.codegraph.dev/jsoncodegen/names"
	"go.codegraph.dev/jsoncodegen/typegraph"
)

func init() {
	backend.Register("rustlike", func() backend.Backend { return New() })
}

// Backend emits Rust-like struct/enum definitions.
type Backend struct{}

// New constructs a Rust-like backend.
func New() *Backend { return &Backend{} }

func (*Backend) Name() string { return "rustlike" }

func (*Backend) Preference() names.Preference { return preference{} }

// Emit writes one struct per reduced Object node and one untagged enum per
// reduced Union node, in ascending TypeId order for determinism.
func (*Backend) Emit(g *typegraph.Graph, registry names.Registry, w io.Writer) error {
	if _, err := io.WriteString(w, "use serde::{Deserialize, Serialize};\n\n"); err != nil {
		return fmt.Errorf("%w: %w", backend.ErrWriteOutput, err)
	}

	ids := make([]typegraph.TypeId, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		switch td := g.Nodes[id].(type) {
		case typegraph.Object:
			if err := emitStruct(w, g, registry, id, td); err != nil {
				return err
			}
		case typegraph.Union:
			if err := emitEnum(w, g, registry, id, td); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "pub type Document = %s;\n", typeExpr(g, registry, g.Root))
	if err != nil {
		return fmt.Errorf("%w: %w", backend.ErrWriteOutput, err)
	}

	return nil
}

func emitStruct(w io.Writer, g *typegraph.Graph, registry names.Registry, id typegraph.TypeId, obj typegraph.Object) error {
	name := typeName(g, registry, id)

	_, err := fmt.Fprintf(w, "#[derive(Debug, Clone, Serialize, Deserialize)]\npub struct %s {\n", name)
	if err != nil {
		return fmt.Errorf("%w: %w", backend.ErrWriteOutput, err)
	}

	for _, f := range obj.Fields {
		fieldName := backend.SnakeCase(f.Name)

		if fieldName != f.Name {
			if _, err := fmt.Fprintf(w, "    #[serde(rename = %q)]\n", f.Name); err != nil {
				return fmt.Errorf("%w: %w", backend.ErrWriteOutput, err)
			}
		}

		_, err := fmt.Fprintf(w, "    pub %s: %s,\n", fieldName, typeExpr(g, registry, f.TypeID))
		if err != nil {
			return fmt.Errorf("%w: %w", backend.ErrWriteOutput, err)
		}
	}

	if _, err := io.WriteString(w, "}\n\n"); err != nil {
		return fmt.Errorf("%w: %w", backend.ErrWriteOutput, err)
	}

	return nil
}

func emitEnum(w io.Writer, g *typegraph.Graph, registry names.Registry, id typegraph.TypeId, union typegraph.Union) error {
	name := typeName(g, registry, id)

	_, err := fmt.Fprintf(w, "#[derive(Debug, Clone, Serialize, Deserialize)]\n#[serde(untagged)]\npub enum %s {\n", name)
	if err != nil {
		return fmt.Errorf("%w: %w", backend.ErrWriteOutput, err)
	}

	for _, memberID := range union.Members {
		variant := variantName(g, registry, memberID)
		ty := typeExpr(g, registry, memberID)

		if _, err := fmt.Fprintf(w, "    %s(%s),\n", variant, ty); err != nil {
			return fmt.Errorf("%w: %w", backend.ErrWriteOutput, err)
		}
	}

	if _, err := io.WriteString(w, "}\n\n"); err != nil {
		return fmt.Errorf("%w: %w", backend.ErrWriteOutput, err)
	}

	return nil
}
