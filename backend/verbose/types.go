package verbose

import (
	"go.codegraph.dev/jsoncodegen/backend"
	"go.codegraph.dev/jsoncodegen/names"
	"go.codegraph.dev/jsoncodegen/typegraph"
)

// typeName returns the PascalCase class identifier for a named (Object or
// Union) node. The registry stores whatever raw field name the matching
// claimed for the node, so every site that prints a class identifier casts
// it through PascalCase rather than printing it as-is.
func typeName(g *typegraph.Graph, registry names.Registry, id typegraph.TypeId) string {
	return backend.PascalCase(backend.Resolve(g, registry, id))
}

// typeExpr returns the boxed reference type used for a field or generic
// parameter referencing id. Everything is boxed (Long rather than long,
// Boolean rather than boolean) because fields are also read back through
// the shared reflection-based serializer, which only ever sees Object.
func typeExpr(g *typegraph.Graph, registry names.Registry, id typegraph.TypeId) string {
	switch v := g.Nodes[id].(type) {
	case typegraph.Boolean:
		return "Boolean"
	case typegraph.Integer:
		return "Long"
	case typegraph.Float:
		return "Double"
	case typegraph.String:
		return "String"
	case typegraph.Null, typegraph.Unknown:
		return "Object"
	case typegraph.Array:
		return "List<" + typeExpr(g, registry, v.Elem) + ">"
	case typegraph.Optional:
		return "Optional<" + typeExpr(g, registry, v.Elem) + ">"
	case typegraph.Object, typegraph.Union:
		return typeName(g, registry, id)
	default:
		return "Object"
	}
}
