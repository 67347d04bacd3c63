// Package schema infers a canonical structural type from an arbitrary JSON
// value.
//
// A [FieldType] is a tagged sum of primitive, special, and composite
// variants. [Infer] walks a decoded JSON value and produces a [FieldType]
// by folding [Unify] across array elements and object-field duplicates;
// [Canonicalize] then sorts object fields and union members so that
// structurally equal types compare equal by shallow comparison.
//
// The resulting [FieldType] is immutable and produced once; it is the input
// to the typegraph package's interning builder.
package schema
