package schema

import "sort"

// Canonicalize sorts every object's fields by name and every union's
// members by complexity rank, recursively. It is the only operation that
// enforces determinism; inference itself uses insertion order.
// Canonicalize is idempotent.
func Canonicalize(t FieldType) FieldType {
	switch v := t.(type) {
	case Object:
		fields := make([]Field, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = Field{Name: f.Name, Type: Canonicalize(f.Type)}
		}

		sort.Slice(fields, func(i, j int) bool { return fields[i].Name < fields[j].Name })

		return Object{Fields: fields}

	case Array:
		return Array{Elem: Canonicalize(v.Elem)}

	case Optional:
		return Optional{Elem: Canonicalize(v.Elem)}

	case Union:
		members := make([]FieldType, len(v.Members))
		for i, m := range v.Members {
			members[i] = Canonicalize(m)
		}

		sort.Slice(members, func(i, j int) bool { return rank(members[i]) < rank(members[j]) })

		return Union{Members: members}
	}

	return t
}

// rank returns a FieldType's position in the fixed complexity ordering:
// Unknown < Null < Boolean < Integer < Float < String < Array < Object <
// Optional < Union.
func rank(t FieldType) int {
	switch t.(type) {
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

// Equal reports whether a and b are structurally identical. Object and
// Union comparisons assume both sides are already canonical, since they
// compare fields and members positionally rather than by set membership.
func Equal(a, b FieldType) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch av := a.(type) {
	case Boolean:
		_, ok := b.(Boolean)

		return ok

	case Integer:
		_, ok := b.(Integer)

		return ok

	case Float:
		_, ok := b.(Float)

		return ok

	case String:
		_, ok := b.(String)

		return ok

	case Null:
		_, ok := b.(Null)

		return ok

	case Unknown:
		_, ok := b.(Unknown)

		return ok

	case Array:
		bv, ok := b.(Array)

		return ok && Equal(av.Elem, bv.Elem)

	case Optional:
		bv, ok := b.(Optional)

		return ok && Equal(av.Elem, bv.Elem)

	case Object:
		bv, ok := b.(Object)
		if !ok || len(av.Fields) != len(bv.Fields) {
			return false
		}

		for i := range av.Fields {
			if av.Fields[i].Name != bv.Fields[i].Name || !Equal(av.Fields[i].Type, bv.Fields[i].Type) {
				return false
			}
		}

		return true

	case Union:
		bv, ok := b.(Union)
		if !ok || len(av.Members) != len(bv.Members) {
			return false
		}

		for i := range av.Members {
			if !Equal(av.Members[i], bv.Members[i]) {
				return false
			}
		}

		return true
	}

	return false
}
