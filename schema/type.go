package schema

// FieldType is the tagged sum of every inferred structural type variant.
// Concrete variants are [Boolean], [Integer], [Float], [String], [Null],
// [Unknown], [Object], [Array], [Optional], and [Union]. Callers type-switch
// on the concrete type, mirroring how goccy/go-yaml's ast.Node variants are
// consumed.
type FieldType interface {
	fieldType()
}

// Boolean is the JSON boolean primitive.
type Boolean struct{}

func (Boolean) fieldType() {}

// Integer is a JSON number whose literal has no fractional or exponent part
// and fits a signed 64-bit range.
type Integer struct{}

func (Integer) fieldType() {}

// Float is any JSON number that is not classified as [Integer].
type Float struct{}

func (Float) fieldType() {}

// String is the JSON string primitive.
type String struct{}

func (String) fieldType() {}

// Null marks an explicit JSON null observed at this position.
type Null struct{}

func (Null) fieldType() {}

// Unknown marks the absence of any observation. It is the identity element
// for [Unify] and the element type of an empty array.
type Unknown struct{}

func (Unknown) fieldType() {}

// Field is a named member of an [Object].
type Field struct {
	Name string
	Type FieldType
}

// Object is an ordered sequence of [Field], canonically sorted by name.
type Object struct {
	Fields []Field
}

func (Object) fieldType() {}

// Array wraps the unified type of every element observed at this position.
type Array struct {
	Elem FieldType
}

func (Array) fieldType() {}

// Optional wraps a type that may also be absent or explicitly null.
// Optional(Optional(T)) never appears; merge sites must flatten.
type Optional struct {
	Elem FieldType
}

func (Optional) fieldType() {}

// Union is an unordered set of mutually incompatible variants, canonically
// sorted by complexity rank. A Union never contains a bare [Null] or
// [Unknown]: nullability is always promoted to [Optional], and absence of
// information is always absorbed by the concrete type it is unified with.
type Union struct {
	Members []FieldType
}

func (Union) fieldType() {}
