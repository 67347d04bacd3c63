package verbose

import (
	"fmt"
	"io"
	"sort"

	"go.codegraph.dev/jsoncodegen/backend"
	"go.codegraph.dev/jsoncodegen/names"
	"go.codegraph.dev/jsoncodegen/typegraph"
)

func init() {
	backend.Register("verbose", func() backend.Backend { return New() })
}

// Backend emits a verbose class-based language: one class per named node
// with private fields and getter/setter pairs, plus a single
// reflection-based serializer class every emitted class delegates to.
type Backend struct{}

// New constructs a verbose backend.
func New() *Backend { return &Backend{} }

func (*Backend) Name() string { return "verbose" }

func (*Backend) Preference() names.Preference { return preference{} }

// classField is a single field of an emitted class: its declared type and
// the original JSON key it serializes as, which may differ from the
// field's identifier after casing.
type classField struct {
	jsonKey string
	ident   string
	typ     string
}

// Emit writes one class per reduced Object and Union node, in ascending
// TypeId order for determinism, followed by the shared serializer class
// and a Document type alias comment identifying the root class.
func (*Backend) Emit(g *typegraph.Graph, registry names.Registry, w io.Writer) error {
	ids := make([]typegraph.TypeId, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		switch td := g.Nodes[id].(type) {
		case typegraph.Object:
			fields := make([]classField, len(td.Fields))
			for i, f := range td.Fields {
				fields[i] = classField{
					jsonKey: f.Name,
					ident:   backend.CamelCase(f.Name),
					typ:     typeExpr(g, registry, f.TypeID),
				}
			}

			if err := emitClass(w, typeName(g, registry, id), fields); err != nil {
				return err
			}

		case typegraph.Union:
			fields := []classField{{jsonKey: "value", ident: "value", typ: "Object"}}

			if err := emitClass(w, typeName(g, registry, id), fields); err != nil {
				return err
			}
		}
	}

	if err := emitSerializer(w); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "// Document root type: %s\n", typeExpr(g, registry, g.Root))
	if err != nil {
		return fmt.Errorf("%w: %w", backend.ErrWriteOutput, err)
	}

	return nil
}

func emitClass(w io.Writer, name string, fields []classField) error {
	if _, err := fmt.Fprintf(w, "public class %s {\n", name); err != nil {
		return fmt.Errorf("%w: %w", backend.ErrWriteOutput, err)
	}

	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "    private %s %s;\n", f.typ, f.ident); err != nil {
			return fmt.Errorf("%w: %w", backend.ErrWriteOutput, err)
		}
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("%w: %w", backend.ErrWriteOutput, err)
	}

	for _, f := range fields {
		getter := "get" + backend.PascalCase(f.ident)
		setter := "set" + backend.PascalCase(f.ident)

		_, err := fmt.Fprintf(w, "    public %s %s() {\n        return %s;\n    }\n\n", f.typ, getter, f.ident)
		if err != nil {
			return fmt.Errorf("%w: %w", backend.ErrWriteOutput, err)
		}

		_, err = fmt.Fprintf(w, "    public void %s(%s %s) {\n        this.%s = %s;\n    }\n\n",
			setter, f.typ, f.ident, f.ident, f.ident)
		if err != nil {
			return fmt.Errorf("%w: %w", backend.ErrWriteOutput, err)
		}
	}

	_, err := io.WriteString(w, "    @Override\n    public String toString() {\n        return ReflectiveSerializer.serialize(this);\n    }\n}\n\n")
	if err != nil {
		return fmt.Errorf("%w: %w", backend.ErrWriteOutput, err)
	}

	return nil
}

// serializerSource is the single reflection-based serializer class shared
// by every emitted class's toString method.
const serializerSource = `public final class ReflectiveSerializer {
    private ReflectiveSerializer() {
    }

    public static String serialize(Object instance) {
        StringBuilder sb = new StringBuilder();
        sb.append(instance.getClass().getSimpleName()).append("{");

        boolean first = true;

        for (java.lang.reflect.Field field : instance.getClass().getDeclaredFields()) {
            field.setAccessible(true);

            if (!first) {
                sb.append(", ");
            }

            first = false;

            try {
                sb.append(field.getName()).append("=").append(field.get(instance));
            } catch (IllegalAccessException e) {
                sb.append(field.getName()).append("=<error>");
            }
        }

        sb.append("}");

        return sb.toString();
    }
}

`

func emitSerializer(w io.Writer) error {
	if _, err := io.WriteString(w, serializerSource); err != nil {
		return fmt.Errorf("%w: %w", backend.ErrWriteOutput, err)
	}

	return nil
}
