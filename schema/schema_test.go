package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.codegraph.dev/jsoncodegen/schema"
)

func TestFromJSON(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  schema.FieldType
	}{
		"object with integer and null field": {
			input: `{"x": 1, "y": null}`,
			want: schema.Object{Fields: []schema.Field{
				{Name: "x", Type: schema.Integer{}},
				{Name: "y", Type: schema.Null{}},
			}},
		},
		"array of objects merges null field into optional": {
			input: `[{"a": 1}, {"a": null}]`,
			want: schema.Array{Elem: schema.Object{Fields: []schema.Field{
				{Name: "a", Type: schema.Optional{Elem: schema.Integer{}}},
			}}},
		},
		"empty object": {
			input: `{}`,
			want:  schema.Object{Fields: nil},
		},
		"empty array": {
			input: `[]`,
			want:  schema.Array{Elem: schema.Unknown{}},
		},
		"array of only nulls": {
			input: `[null, null]`,
			want:  schema.Array{Elem: schema.Null{}},
		},
		"array mixing one null and one integer": {
			input: `[null, 1]`,
			want:  schema.Array{Elem: schema.Optional{Elem: schema.Integer{}}},
		},
		"array of mixed primitives becomes a union": {
			input: `[1, "a", 2]`,
			want: schema.Array{Elem: schema.Union{Members: []schema.FieldType{
				schema.Integer{}, schema.String{},
			}}},
		},
		"array of mixed primitives with null becomes optional union": {
			input: `[1, "a", null]`,
			want: schema.Array{Elem: schema.Optional{Elem: schema.Union{Members: []schema.FieldType{
				schema.Integer{}, schema.String{},
			}}}},
		},
		"integer overflowing signed 64-bit range classifies as float": {
			input: `99999999999999999999`,
			want:  schema.Float{},
		},
		"float literal classifies as float": {
			input: `1.5`,
			want:  schema.Float{},
		},
		"fields sorted by name": {
			input: `{"z": 1, "a": "s", "m": true}`,
			want: schema.Object{Fields: []schema.Field{
				{Name: "a", Type: schema.String{}},
				{Name: "m", Type: schema.Boolean{}},
				{Name: "z", Type: schema.Integer{}},
			}},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := schema.FromJSON([]byte(tc.input))
			require.NoError(t, err)
			assert.True(t, schema.Equal(tc.want, got), "got %#v, want %#v", got, tc.want)
		})
	}
}

func TestFromJSONInvalid(t *testing.T) {
	t.Parallel()

	_, err := schema.FromJSON([]byte(`{not json`))
	require.Error(t, err)
	require.ErrorIs(t, err, schema.ErrInvalidJSON)
}

func TestUnify(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		a, b schema.FieldType
		want schema.FieldType
	}{
		"same type is identity": {
			a: schema.Integer{}, b: schema.Integer{}, want: schema.Integer{},
		},
		"unknown adopts concrete": {
			a: schema.Unknown{}, b: schema.String{}, want: schema.String{},
		},
		"null promotes to optional": {
			a: schema.Null{}, b: schema.Integer{}, want: schema.Optional{Elem: schema.Integer{}},
		},
		"null against optional passes through": {
			a: schema.Null{}, b: schema.Optional{Elem: schema.Integer{}},
			want: schema.Optional{Elem: schema.Integer{}},
		},
		"optional flattens rather than double-wrapping": {
			a: schema.Optional{Elem: schema.Integer{}}, b: schema.Optional{Elem: schema.String{}},
			want: schema.Optional{Elem: schema.Union{Members: []schema.FieldType{
				schema.Integer{}, schema.String{},
			}}},
		},
		"disjoint primitives form a union": {
			a: schema.Boolean{}, b: schema.String{},
			want: schema.Union{Members: []schema.FieldType{schema.Boolean{}, schema.String{}}},
		},
		"array and object form a union": {
			a: schema.Array{Elem: schema.Integer{}}, b: schema.Object{},
			want: schema.Union{Members: []schema.FieldType{
				schema.Array{Elem: schema.Integer{}}, schema.Object{},
			}},
		},
		"union gains a member for a new constructor": {
			a: schema.Union{Members: []schema.FieldType{schema.Integer{}, schema.String{}}},
			b: schema.Array{Elem: schema.Boolean{}},
			want: schema.Union{Members: []schema.FieldType{
				schema.Integer{}, schema.String{}, schema.Array{Elem: schema.Boolean{}},
			}},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := schema.Canonicalize(schema.Unify(tc.a, tc.b))
			want := schema.Canonicalize(tc.want)
			assert.True(t, schema.Equal(want, got), "got %#v, want %#v", got, want)
		})
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	t.Parallel()

	ft := schema.Object{Fields: []schema.Field{
		{Name: "z", Type: schema.Union{Members: []schema.FieldType{schema.String{}, schema.Integer{}}}},
		{Name: "a", Type: schema.Array{Elem: schema.Unknown{}}},
	}}

	once := schema.Canonicalize(ft)
	twice := schema.Canonicalize(once)

	assert.True(t, schema.Equal(once, twice))
}
