package jsonschema

import (
	"github.com/google/jsonschema-go/jsonschema"

	"go.codegraph.dev/jsoncodegen/backend"
	"go.codegraph.dev/jsoncodegen/names"
	"go.codegraph.dev/jsoncodegen/typegraph"
)

// refTo builds the $ref value pointing at a $defs entry named name.
func refTo(name string) *jsonschema.Schema {
	return &jsonschema.Schema{Ref: "#/$defs/" + name}
}

// defName returns the PascalCase $defs key for a named (Object or Union)
// node. The registry stores whatever raw field name the matching claimed
// for the node, so every site that builds a $defs key or $ref casts it
// through PascalCase rather than using it as-is.
func defName(g *typegraph.Graph, registry names.Registry, id typegraph.TypeId) string {
	return backend.PascalCase(backend.Resolve(g, registry, id))
}

// typeSchema returns the schema used to reference id from a property,
// array items, or union branch. Named Object and Union nodes resolve to a
// $ref against their $defs entry; everything else is inlined.
func typeSchema(g *typegraph.Graph, registry names.Registry, id typegraph.TypeId) *jsonschema.Schema {
	switch v := g.Nodes[id].(type) {
	case typegraph.Boolean:
		return &jsonschema.Schema{Type: "boolean"}
	case typegraph.Integer:
		return &jsonschema.Schema{Type: "integer"}
	case typegraph.Float:
		return &jsonschema.Schema{Type: "number"}
	case typegraph.String:
		return &jsonschema.Schema{Type: "string"}
	case typegraph.Null:
		return &jsonschema.Schema{Type: "null"}
	case typegraph.Unknown:
		return &jsonschema.Schema{}
	case typegraph.Array:
		return &jsonschema.Schema{Type: "array", Items: typeSchema(g, registry, v.Elem)}
	case typegraph.Optional:
		return nullable(typeSchema(g, registry, v.Elem))
	case typegraph.Object, typegraph.Union:
		return refTo(defName(g, registry, id))
	default:
		return &jsonschema.Schema{}
	}
}

// nullable widens inner to also accept JSON null. A schema that already
// accepts anything (TrueSchema) is left alone, a plain single-Type schema
// becomes a two-element Types list, and anything more structured (a $ref
// or a schema with its own AnyOf/Properties/Items) is wrapped in an AnyOf
// alongside a {"type": "null"} branch, since Types doesn't compose with
// those.
func nullable(inner *jsonschema.Schema) *jsonschema.Schema {
	switch {
	case inner.Ref != "" || inner.Properties != nil || inner.Items != nil || len(inner.AnyOf) > 0:
		return &jsonschema.Schema{AnyOf: []*jsonschema.Schema{inner, {Type: "null"}}}
	case inner.Type == "null":
		return inner
	case inner.Type != "":
		return &jsonschema.Schema{Types: []string{inner.Type, "null"}}
	default:
		// TrueSchema: already validates null.
		return inner
	}
}
