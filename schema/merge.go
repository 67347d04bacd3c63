package schema

// Unify returns the least upper bound of a and b under "accepts more
// documents": the smallest type both a and b widen into. Unify is
// commutative and associative once its inputs are canonical.
func Unify(a, b FieldType) FieldType {
	if Equal(a, b) {
		return a
	}

	if _, ok := a.(Unknown); ok {
		return b
	}

	if _, ok := b.(Unknown); ok {
		return a
	}

	if _, ok := a.(Null); ok {
		return unifyNull(b)
	}

	if _, ok := b.(Null); ok {
		return unifyNull(a)
	}

	if aOpt, ok := a.(Optional); ok {
		if bOpt, ok := b.(Optional); ok {
			return Optional{Elem: Unify(aOpt.Elem, bOpt.Elem)}
		}

		return Optional{Elem: Unify(aOpt.Elem, b)}
	}

	if bOpt, ok := b.(Optional); ok {
		return Optional{Elem: Unify(a, bOpt.Elem)}
	}

	if aa, ok := a.(Array); ok {
		if ba, ok := b.(Array); ok {
			return Array{Elem: Unify(aa.Elem, ba.Elem)}
		}
	}

	if ao, ok := a.(Object); ok {
		if bo, ok := b.(Object); ok {
			return Object{Fields: mergeFields(ao.Fields, bo.Fields)}
		}
	}

	if au, ok := a.(Union); ok {
		return unifyIntoUnion(au, b)
	}

	if bu, ok := b.(Union); ok {
		return unifyIntoUnion(bu, a)
	}

	// Disjoint primitives, or an Array against an Object: neither side
	// absorbs the other, so both survive as union members.
	return Union{Members: []FieldType{a, b}}
}

// unifyNull promotes a Null observation into an Optional, unless t is
// already Optional, in which case it passes through unchanged.
func unifyNull(t FieldType) FieldType {
	if _, ok := t.(Optional); ok {
		return t
	}

	return Optional{Elem: t}
}

// unifyIntoUnion folds t (a bare type or another Union) into u, merging
// structurally in place with any existing member that shares t's
// constructor (same primitive kind, or both Array, or both Object).
func unifyIntoUnion(u Union, t FieldType) Union {
	if tu, ok := t.(Union); ok {
		result := u
		for _, m := range tu.Members {
			result = insertUnionMember(result, m)
		}

		return result
	}

	return insertUnionMember(u, t)
}

func insertUnionMember(u Union, t FieldType) Union {
	members := make([]FieldType, len(u.Members))
	copy(members, u.Members)

	for i, m := range members {
		if sameConstructor(m, t) {
			members[i] = Unify(m, t)

			return Union{Members: members}
		}
	}

	return Union{Members: append(members, t)}
}

// sameConstructor reports whether a and b are built from the same FieldType
// variant, so that unifying them produces a single representative rather
// than two disjoint union members.
func sameConstructor(a, b FieldType) bool {
	switch a.(type) {
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
	case Array:
		_, ok := b.(Array)

		return ok
	case Object:
		_, ok := b.(Object)

		return ok
	}

	return false
}

// mergeFields implements the Object+Object case of Unify: the union of
// field names, unifying types present on both sides and promoting
// one-sided fields to Optional unless they already represent absence.
func mergeFields(f1, f2 []Field) []Field {
	left := fieldIndex(f1)
	right := fieldIndex(f2)

	var order []string

	seen := make(map[string]bool, len(f1)+len(f2))

	for _, f := range f1 {
		if !seen[f.Name] {
			order = append(order, f.Name)
			seen[f.Name] = true
		}
	}

	for _, f := range f2 {
		if !seen[f.Name] {
			order = append(order, f.Name)
			seen[f.Name] = true
		}
	}

	result := make([]Field, 0, len(order))

	for _, name := range order {
		lt, lok := left[name]
		rt, rok := right[name]

		switch {
		case lok && rok:
			result = append(result, Field{Name: name, Type: Unify(lt, rt)})
		case lok:
			result = append(result, Field{Name: name, Type: promoteOptional(lt)})
		default:
			result = append(result, Field{Name: name, Type: promoteOptional(rt)})
		}
	}

	return result
}

func fieldIndex(fields []Field) map[string]FieldType {
	idx := make(map[string]FieldType, len(fields))
	for _, f := range fields {
		idx[f.Name] = f.Type
	}

	return idx
}

// promoteOptional wraps t in Optional unless t already represents absence
// (Null, Unknown, or an existing Optional), matching merge_fields' rule for
// a field present on only one side of a merge.
func promoteOptional(t FieldType) FieldType {
	switch t.(type) {
	case Null, Unknown, Optional:
		return t
	}

	return Optional{Elem: t}
}
