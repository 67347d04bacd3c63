// Package typegraph interns a [schema.FieldType] into a deduplicated,
// possibly-cyclic graph of nodes addressed by [TypeId], and reduces that
// graph by merging structurally compatible object nodes.
//
// [Build] performs the interning: recursive positions that were nested
// [schema.FieldType] values become [TypeId] references into a shared
// [Graph.Nodes] map, so two structurally identical subtrees collapse to one
// node. [Reduce] then walks the interned graph and merges objects whose
// fields are pairwise compatible, which is what turns an unboundedly deep
// schema (produced from deeply or unboundedly nested JSON) into a
// self-referential recursive type.
package typegraph
