package jsonapi

import (
	"bytes"
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

type dataShape int

const (
	shapeAbsent dataShape = iota
	shapeSingle
	shapeCollection
	shapeInvalid
)

// PrimaryData holds a document's or relationship's "data" member in its
// parsed-but-unmaterialized form. The JSON shape (object vs. array) is
// recorded once at parse time and carried as a tag; materialization into a
// concrete type is deferred until DecodeSingle or DecodeCollection.
//
// The zero value is the absent payload, which is also what a missing or
// null "data" member parses to. A scalar or boolean "data" member is
// carried without error and rejected only when projected.
type PrimaryData struct {
	shape dataShape
	raw   json.RawMessage
}

// NewData marshals v and wraps it as primary data, tagging the shape from
// the marshaled form. A nil v produces the absent payload.
func NewData(v any) (PrimaryData, error) {
	if v == nil {
		return PrimaryData{}, nil
	}
	raw, err := jsoniter.Marshal(v)
	if err != nil {
		return PrimaryData{}, err
	}
	var d PrimaryData
	if err := d.UnmarshalJSON(raw); err != nil {
		return PrimaryData{}, err
	}
	return d, nil
}

// IsAbsent reports whether the data member was missing or null.
func (d PrimaryData) IsAbsent() bool {
	return d.shape == shapeAbsent
}

// IsSingle reports whether the data member is a single resource-shaped
// object.
func (d PrimaryData) IsSingle() bool {
	return d.shape == shapeSingle
}

// IsCollection reports whether the data member is an array of
// resource-shaped objects, including the empty array.
func (d PrimaryData) IsCollection() bool {
	return d.shape == shapeCollection
}

func (d PrimaryData) MarshalJSON() ([]byte, error) {
	if d.shape == shapeAbsent {
		return []byte("null"), nil
	}
	return d.raw, nil
}

func (d *PrimaryData) UnmarshalJSON(buf []byte) error {
	b := bytes.TrimSpace(buf)
	if len(b) == 0 || b[0] == 'n' {
		*d = PrimaryData{}
		return nil
	}
	raw := make(json.RawMessage, len(b))
	copy(raw, b)
	switch b[0] {
	case '{':
		*d = PrimaryData{shape: shapeSingle, raw: raw}
	case '[':
		*d = PrimaryData{shape: shapeCollection, raw: raw}
	default:
		*d = PrimaryData{shape: shapeInvalid, raw: raw}
	}
	return nil
}

// DecodeSingle materializes object-shaped primary data into T. Absent data
// yields a nil result and no error; array-shaped or scalar data yields a
// *ShapeMismatchError. Decode failures from materializing T propagate
// unchanged.
func DecodeSingle[T any](d PrimaryData) (*T, error) {
	switch d.shape {
	case shapeAbsent:
		return nil, nil
	case shapeCollection:
		return nil, &ShapeMismatchError{reason: "data is not an object; use the collection projection"}
	case shapeInvalid:
		return nil, &ShapeMismatchError{reason: "data is not an object"}
	}
	var v T
	if err := jsoniter.Unmarshal(d.raw, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// DecodeCollection materializes array-shaped primary data into a slice of
// T. Absent data yields a nil slice and no error; the empty array yields an
// empty, non-nil slice. Object-shaped or scalar data yields a
// *ShapeMismatchError. Decode failures from materializing T propagate
// unchanged.
func DecodeCollection[T any](d PrimaryData) ([]T, error) {
	switch d.shape {
	case shapeAbsent:
		return nil, nil
	case shapeSingle:
		return nil, &ShapeMismatchError{reason: "data is not an array; use the single projection"}
	case shapeInvalid:
		return nil, &ShapeMismatchError{reason: "data is not an array"}
	}
	var v []T
	if err := jsoniter.Unmarshal(d.raw, &v); err != nil {
		return nil, err
	}
	if v == nil {
		v = []T{}
	}
	return v, nil
}
