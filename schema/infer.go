package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidJSON is returned when the input cannot be parsed as JSON.
var ErrInvalidJSON = errors.New("invalid JSON input")

// FromJSON parses data as JSON and returns its canonical [FieldType].
// Numbers are classified as [Integer] when their literal text has no
// fractional or exponent part and fits a signed 64-bit range, and as
// [Float] otherwise.
func FromJSON(data []byte) (FieldType, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any

	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return Canonicalize(Infer(v)), nil
}

// Infer returns the (non-canonicalized) [FieldType] for a value decoded by
// [encoding/json] with [json.Decoder.UseNumber] enabled. Object key order
// is observed during traversal but has no effect on the result, since
// [Canonicalize] sorts fields by name regardless.
func Infer(v any) FieldType {
	switch val := v.(type) {
	case nil:
		return Null{}
	case bool:
		return Boolean{}
	case json.Number:
		return classifyNumber(val)
	case string:
		return String{}
	case []any:
		return inferArray(val)
	case map[string]any:
		return inferObject(val)
	}

	return Unknown{}
}

func inferArray(elems []any) FieldType {
	var elem FieldType = Unknown{}

	for _, v := range elems {
		elem = Unify(elem, Infer(v))
	}

	return Array{Elem: elem}
}

func inferObject(m map[string]any) FieldType {
	fields := make([]Field, 0, len(m))

	for name, v := range m {
		fields = append(fields, Field{Name: name, Type: Infer(v)})
	}

	return Object{Fields: fields}
}

// classifyNumber classifies a JSON number literal as [Integer] when it has
// no fractional or exponent part and fits a signed 64-bit range, and as
// [Float] otherwise. Integral literals outside the signed 64-bit range
// (e.g. 2^64) are classified as Float, as are integral values written
// with an exponent (e.g. 1e3); neither is special-cased back to Integer.
func classifyNumber(n json.Number) FieldType {
	s := n.String()
	if strings.ContainsAny(s, ".eE") {
		return Float{}
	}

	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		return Float{}
	}

	return Integer{}
}
