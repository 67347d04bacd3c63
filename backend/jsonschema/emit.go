package jsonschema

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	jschema "github.com/google/jsonschema-go/jsonschema"

	"go.codegraph.dev/jsoncodegen/backend"
	"go.codegraph.dev/jsoncodegen/names"
	"go.codegraph.dev/jsoncodegen/typegraph"
)

func init() {
	backend.Register("jsonschema", func() backend.Backend { return New() })
}

// draftURL is the JSON Schema dialect declared on the emitted root
// document's $schema field.
const draftURL = "http://json-schema.org/draft-07/schema#"

// Backend emits a JSON Schema document instead of source code: every named
// Object and Union node becomes a $defs entry, and the root document
// either $refs the root node's entry or inlines it directly when the root
// never needed a name of its own.
type Backend struct{}

// New constructs a JSON Schema backend.
func New() *Backend { return &Backend{} }

func (*Backend) Name() string { return "jsonschema" }

func (*Backend) Preference() names.Preference { return preference{} }

func (*Backend) Emit(g *typegraph.Graph, registry names.Registry, w io.Writer) error {
	ids := make([]typegraph.TypeId, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	defs := make(map[string]*jschema.Schema)

	for _, id := range ids {
		switch td := g.Nodes[id].(type) {
		case typegraph.Object:
			name := defName(g, registry, id)
			defs[name] = objectSchema(g, registry, td)
		case typegraph.Union:
			name := defName(g, registry, id)
			defs[name] = unionSchema(g, registry, td)
		}
	}

	var root *jschema.Schema

	switch g.Nodes[g.Root].(type) {
	case typegraph.Object, typegraph.Union:
		root = refTo(defName(g, registry, g.Root))
	default:
		root = typeSchema(g, registry, g.Root)
	}

	root.Schema = draftURL

	if len(defs) > 0 {
		root.Defs = defs
	}

	out, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", backend.ErrWriteOutput, err)
	}

	out = append(out, '\n')

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("%w: %w", backend.ErrWriteOutput, err)
	}

	return nil
}

func objectSchema(g *typegraph.Graph, registry names.Registry, obj typegraph.Object) *jschema.Schema {
	props := make(map[string]*jschema.Schema, len(obj.Fields))

	required := make([]string, 0, len(obj.Fields))
	order := make([]string, len(obj.Fields))

	for i, f := range obj.Fields {
		props[f.Name] = typeSchema(g, registry, f.TypeID)
		order[i] = f.Name

		if _, optional := g.Nodes[f.TypeID].(typegraph.Optional); !optional {
			required = append(required, f.Name)
		}
	}

	sort.Strings(required)

	s := &jschema.Schema{
		Type:                 "object",
		Properties:           props,
		PropertyOrder:        order,
		AdditionalProperties: &jschema.Schema{Not: &jschema.Schema{}},
	}

	if len(required) > 0 {
		s.Required = required
	}

	return s
}

func unionSchema(g *typegraph.Graph, registry names.Registry, union typegraph.Union) *jschema.Schema {
	branches := make([]*jschema.Schema, len(union.Members))
	for i, memberID := range union.Members {
		branches[i] = typeSchema(g, registry, memberID)
	}

	return &jschema.Schema{AnyOf: branches}
}
