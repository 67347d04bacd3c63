package typegraph

import (
	"sort"
	"strconv"
	"strings"

	"go.codegraph.dev/jsoncodegen/internal/invariant"
	"go.codegraph.dev/jsoncodegen/schema"
)

// Build interns a canonical [schema.FieldType] into a [Graph] with no
// structurally duplicate nodes. Traversal is depth-first post-order: a
// node's children are interned before the node itself, so that the node's
// own signature (used for deduplication) can reference already-resolved
// child TypeIds.
func Build(root schema.FieldType) *Graph {
	b := &builder{nodes: map[TypeId]TypeDef{}, cache: map[string]TypeId{}}

	return &Graph{Root: b.intern(root), Nodes: b.nodes}
}

type builder struct {
	nodes map[TypeId]TypeDef
	cache map[string]TypeId
	next  TypeId
}

func (b *builder) intern(ft schema.FieldType) TypeId {
	switch v := ft.(type) {
	case schema.Boolean:
		return b.internDef(Boolean{})
	case schema.Integer:
		return b.internDef(Integer{})
	case schema.Float:
		return b.internDef(Float{})
	case schema.String:
		return b.internDef(String{})
	case schema.Null:
		return b.internDef(Null{})
	case schema.Unknown:
		return b.internDef(Unknown{})

	case schema.Array:
		return b.internDef(Array{Elem: b.intern(v.Elem)})

	case schema.Optional:
		return b.internDef(Optional{Elem: b.intern(v.Elem)})

	case schema.Object:
		fields := make([]ObjectField, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = ObjectField{Name: f.Name, TypeID: b.intern(f.Type)}
		}

		return b.internDef(Object{Fields: fields})

	case schema.Union:
		ids := make([]TypeId, len(v.Members))
		for i, m := range v.Members {
			ids[i] = b.intern(m)
		}

		sortUnionMembers(b.nodes, ids)

		return b.internDef(Union{Members: ids})
	}

	invariant.Check(false, "typegraph: unknown schema.FieldType %T", ft)

	return 0
}

func (b *builder) internDef(td TypeDef) TypeId {
	sig := signature(td)
	if id, ok := b.cache[sig]; ok {
		return id
	}

	id := b.next
	b.next++
	b.nodes[id] = td
	b.cache[sig] = id

	return id
}

// sortUnionMembers sorts member TypeIds by the complexity rank of their
// referenced TypeDef, the same ranking schema.Canonicalize applies, now
// resolved through the graph being built.
func sortUnionMembers(nodes map[TypeId]TypeDef, ids []TypeId) {
	sort.Slice(ids, func(i, j int) bool { return rank(nodes[ids[i]]) < rank(nodes[ids[j]]) })
}

// rank returns a TypeDef's position in the fixed complexity ordering used to
// canonicalize union members: Unknown < Null < Boolean < Integer < Float <
// String < Array < Object < Optional < Union.
func rank(td TypeDef) int {
	switch td.(type) {
	case Unknown:
		return 0
	case Null:
		return 1
	case Boolean:
		return 2
	case Integer:
		return 3
	case Float:
		return 4
	case String:
		return 5
	case Array:
		return 6
	case Object:
		return 7
	case Optional:
		return 8
	case Union:
		return 9
	}

	return -1
}

// signature returns a textual, structurally-unambiguous key for td, used to
// deduplicate nodes during interning. It is safe to compute without
// recursing into child TypeDefs because every TypeId it embeds has already
// been resolved to its final, deduplicated identity.
func signature(td TypeDef) string {
	switch v := td.(type) {
	case Boolean:
		return "b"
	case Integer:
		return "i"
	case Float:
		return "f"
	case String:
		return "s"
	case Null:
		return "n"
	case Unknown:
		return "u"

	case Array:
		return "arr(" + strconv.Itoa(int(v.Elem)) + ")"

	case Optional:
		return "opt(" + strconv.Itoa(int(v.Elem)) + ")"

	case Object:
		var sb strings.Builder

		sb.WriteString("obj(")

		for i, f := range v.Fields {
			if i > 0 {
				sb.WriteByte(',')
			}

			sb.WriteString(f.Name)
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(int(f.TypeID)))
		}

		sb.WriteByte(')')

		return sb.String()

	case Union:
		parts := make([]string, len(v.Members))
		for i, id := range v.Members {
			parts[i] = strconv.Itoa(int(id))
		}

		return "uni(" + strings.Join(parts, ",") + ")"
	}

	invariant.Check(false, "typegraph: unknown TypeDef %T", td)

	return ""
}
