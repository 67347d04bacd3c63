package typegraph

import "sort"

// Reduce merges structurally compatible object nodes in g and returns a new
// graph; non-object nodes pass through with only TypeId remapping.
//
// Original nodes are walked in insertion order (ascending TypeId, which
// build's post-order construction guarantees visits every child before its
// parent). Each node's references are remapped to already-reduced IDs
// before the node itself is reduced, so a single pass suffices: by the time
// an object is considered for merging, everything it points to is already
// final. See mergeFieldTypeIDs for the per-field rules that decide whether
// two objects merge.
func (g *Graph) Reduce() *Graph {
	r := &reducer{nodes: map[TypeId]TypeDef{}, cache: map[string]TypeId{}}
	remap := make(map[TypeId]TypeId, len(g.Nodes))

	ids := make([]TypeId, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, origID := range ids {
		td := remapRefs(g.Nodes[origID], remap)
		remap[origID] = r.place(td)
	}

	reduced := &Graph{Root: remap[g.Root], Nodes: r.nodes}
	pruneUnreachable(reduced)

	return reduced
}

// pruneUnreachable removes nodes left behind when an object merge
// overwrites an existing node's fields, severing its reference to a node
// (e.g. a Null field later replaced by an Optional pointing elsewhere) that
// nothing else in the reduced graph reaches.
func pruneUnreachable(g *Graph) {
	reachable := g.Reachable()

	for id := range g.Nodes {
		if !reachable[id] {
			delete(g.Nodes, id)
		}
	}
}

type reducer struct {
	nodes     map[TypeId]TypeDef
	cache     map[string]TypeId // signature -> id, non-object nodes only
	objectIDs []TypeId          // reduced object node IDs, in the order they were created
	next      TypeId
}

// place inserts td into the reduced graph, attempting an in-place object
// merge first, and returns its resulting TypeId.
func (r *reducer) place(td TypeDef) TypeId {
	obj, ok := td.(Object)
	if !ok {
		return r.internDef(td)
	}

	for _, existingID := range r.objectIDs {
		existing := r.nodes[existingID].(Object) //nolint:forcetypeassert // objectIDs only ever holds Object nodes

		if merged, ok := mergeObjects(r, existing, obj); ok {
			r.nodes[existingID] = merged

			return existingID
		}
	}

	id := r.allocate(obj)
	r.objectIDs = append(r.objectIDs, id)

	return id
}

// internDef deduplicates a non-object node by signature.
func (r *reducer) internDef(td TypeDef) TypeId {
	sig := signature(td)
	if id, ok := r.cache[sig]; ok {
		return id
	}

	id := r.allocate(td)
	r.cache[sig] = id

	return id
}

func (r *reducer) allocate(td TypeDef) TypeId {
	id := r.next
	r.next++
	r.nodes[id] = td

	return id
}

// remapRefs returns a copy of td with every contained TypeId replaced by
// its reduced equivalent from remap.
func remapRefs(td TypeDef, remap map[TypeId]TypeId) TypeDef {
	switch v := td.(type) {
	case Array:
		return Array{Elem: remap[v.Elem]}

	case Optional:
		return Optional{Elem: remap[v.Elem]}

	case Object:
		fields := make([]ObjectField, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = ObjectField{Name: f.Name, TypeID: remap[f.TypeID]}
		}

		return Object{Fields: fields}

	case Union:
		members := make([]TypeId, len(v.Members))
		for i, id := range v.Members {
			members[i] = remap[id]
		}

		return Union{Members: members}
	}

	return td
}

// mergeObjects attempts to merge two objects: they must share a field
// count and, after zipping by (already sorted) name, every field pair must
// merge under mergeFieldTypeIDs.
func mergeObjects(r *reducer, a, b Object) (Object, bool) {
	if len(a.Fields) != len(b.Fields) {
		return Object{}, false
	}

	fields := make([]ObjectField, len(a.Fields))

	for i := range a.Fields {
		if a.Fields[i].Name != b.Fields[i].Name {
			return Object{}, false
		}

		merged, ok := mergeFieldTypeIDs(r, a.Fields[i].TypeID, b.Fields[i].TypeID)
		if !ok {
			return Object{}, false
		}

		fields[i] = ObjectField{Name: a.Fields[i].Name, TypeID: merged}
	}

	return Object{Fields: fields}, true
}

// mergeFieldTypeIDs merges a single pair of field types per the reduction
// table: identical IDs pass through; Unknown is absorbed; Null combines
// with a non-Optional type into a fresh Optional and passes through an
// existing Optional unchanged; Optional(T) combines with T into
// Optional(T); two Optionals merge iff their inner types merge by these
// same rules; two Arrays merge by recursing into their element types. Any
// other pairing fails the merge.
func mergeFieldTypeIDs(r *reducer, idA, idB TypeId) (TypeId, bool) {
	if idA == idB {
		return idA, true
	}

	defA, defB := r.nodes[idA], r.nodes[idB]

	if _, ok := defA.(Unknown); ok {
		return idB, true
	}

	if _, ok := defB.(Unknown); ok {
		return idA, true
	}

	if _, ok := defA.(Null); ok {
		return mergeNullWith(r, idB, defB)
	}

	if _, ok := defB.(Null); ok {
		return mergeNullWith(r, idA, defA)
	}

	optA, aIsOpt := defA.(Optional)
	optB, bIsOpt := defB.(Optional)

	switch {
	case aIsOpt && bIsOpt:
		inner, ok := mergeFieldTypeIDs(r, optA.Elem, optB.Elem)
		if !ok {
			return 0, false
		}

		return r.internDef(Optional{Elem: inner}), true

	case aIsOpt:
		if optA.Elem == idB {
			return idA, true
		}

		return 0, false

	case bIsOpt:
		if optB.Elem == idA {
			return idB, true
		}

		return 0, false
	}

	// Array(A) against Array(B): recurse on the element types rather than
	// requiring an exact match. This is what lets a field merge collapse,
	// e.g., "children: Array(Unknown)" against "children: Array(<the
	// object being merged>)" into a self-referential "children:
	// Array(self)" — the scenario that motivates reduction in the first
	// place. Non-array, non-special pairings are incompatible.
	if arrA, ok := defA.(Array); ok {
		if arrB, ok := defB.(Array); ok {
			elem, ok := mergeFieldTypeIDs(r, arrA.Elem, arrB.Elem)
			if !ok {
				return 0, false
			}

			return r.internDef(Array{Elem: elem}), true
		}
	}

	return 0, false
}

// mergeNullWith merges a Null field against a non-Null field t (resolved
// via its TypeId id and TypeDef def): Null|Optional(T) passes through
// unchanged, Null|T interns a fresh Optional(T).
func mergeNullWith(r *reducer, id TypeId, def TypeDef) (TypeId, bool) {
	if _, ok := def.(Optional); ok {
		return id, true
	}

	return r.internDef(Optional{Elem: id}), true
}
