// Package jsonschema emits a JSON Schema document describing the shapes a
// reduced TypeGraph accepts, rather than source code in a host language.
// Named Object and Union nodes become $defs entries referenced by $ref;
// everything else is inlined at its use site.
package jsonschema
