package rustlike

import (
	"fmt"

	"go.codegraph.dev/jsoncodegen/backend"
	"go.codegraph.dev/jsoncodegen/names"
	"go.codegraph.dev/jsoncodegen/typegraph"
)

// typeName returns the PascalCase Rust type identifier for a named
// (Object or Union) node. The registry stores whatever raw field name the
// matching claimed for the node, so every site that prints a type
// identifier casts it through PascalCase rather than printing it as-is.
func typeName(g *typegraph.Graph, registry names.Registry, id typegraph.TypeId) string {
	return backend.PascalCase(backend.Resolve(g, registry, id))
}

// typeExpr returns the Rust type expression used to reference id from a
// struct field or enum variant.
func typeExpr(g *typegraph.Graph, registry names.Registry, id typegraph.TypeId) string {
	switch v := g.Nodes[id].(type) {
	case typegraph.Boolean:
		return "bool"
	case typegraph.Integer:
		return "i64"
	case typegraph.Float:
		return "f64"
	case typegraph.String:
		return "String"
	case typegraph.Null:
		return "()"
	case typegraph.Unknown:
		return "serde_json::Value"
	case typegraph.Array:
		return "Vec<" + typeExpr(g, registry, v.Elem) + ">"
	case typegraph.Optional:
		return "Option<" + typeExpr(g, registry, v.Elem) + ">"
	case typegraph.Object, typegraph.Union:
		return typeName(g, registry, id)
	default:
		return "serde_json::Value"
	}
}

// variantName returns the enum variant identifier used for a union member
// referencing id. Primitives and wrapper constructors get a fixed
// structural name; object and union members reuse their own resolved type
// name, since a union holds at most one representative of each constructor
// so these never collide within one enum.
func variantName(g *typegraph.Graph, registry names.Registry, id typegraph.TypeId) string {
	switch v := g.Nodes[id].(type) {
	case typegraph.Boolean:
		return "Bool"
	case typegraph.Integer:
		return "Int"
	case typegraph.Float:
		return "Float"
	case typegraph.String:
		return "Str"
	case typegraph.Null:
		return "Null"
	case typegraph.Unknown:
		return "Unknown"
	case typegraph.Array:
		return "List"
	case typegraph.Optional:
		return "Maybe" + variantName(g, registry, v.Elem)
	case typegraph.Object, typegraph.Union:
		return typeName(g, registry, id)
	default:
		return fmt.Sprintf("Variant%d", id)
	}
}
