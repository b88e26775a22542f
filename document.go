package jsonapi

import (
	"bytes"
	"encoding/json"
	"sort"

	jsoniter "github.com/json-iterator/go"
)

// This object defines a document’s “top level”.
//
// The primary data is held in erased form; inspect it with HasCollection
// and friends, or materialize it with DecodeSingle / DecodeCollection.
type Document struct {
	// An object describing the server’s implementation.
	JSONAPI *JSONAPI

	// The document’s “primary data”.
	Data PrimaryData

	// An array of error objects.
	Errors []Error

	// A links object related to the primary data.
	Links Links

	// An array of resource objects that are related to the primary data and/or each other.
	Included []ResourceObject

	// A meta object containing non-standard meta-information.
	Meta map[string]any

	// Unrecognized top-level members, typically contributed by applied
	// extensions. They are kept verbatim and re-emitted on serialization.
	Extensions map[string]json.RawMessage
}

type JSONAPI struct {
	// A string indicating the highest JSON:API version supported.
	Version string `json:"version,omitempty"`

	// An array of URIs for all applied extensions.
	Ext []string `json:"ext,omitempty"`

	// An array of URIs for all applied profiles.
	Profile []string `json:"profile,omitempty"`

	// A meta object containing non-standard meta-information.
	Meta map[string]any `json:"meta,omitempty"`
}

// HasCollection reports whether the document's data member is present and
// array-shaped, including the empty array.
func (d *Document) HasCollection() bool {
	return d.Data.IsCollection()
}

// HasErrors reports whether the document's errors member is present and
// non-empty. The specification intends data and errors as alternatives,
// but the codec reports both facts independently and leaves interpretation
// to the caller.
func (d *Document) HasErrors() bool {
	return len(d.Errors) > 0
}

type documentObject struct {
	JSONAPI  *JSONAPI         `json:"jsonapi,omitempty"`
	Data     *PrimaryData     `json:"data,omitempty"`
	Errors   []Error          `json:"errors,omitempty"`
	Links    Links            `json:"links,omitempty"`
	Included []ResourceObject `json:"included,omitempty"`
	Meta     map[string]any   `json:"meta,omitempty"`
}

func (d Document) MarshalJSON() ([]byte, error) {
	obj := documentObject{
		JSONAPI:  d.JSONAPI,
		Errors:   d.Errors,
		Links:    d.Links,
		Included: d.Included,
		Meta:     d.Meta,
	}
	if !d.Data.IsAbsent() {
		obj.Data = &d.Data
	}
	base, err := jsoniter.Marshal(obj)
	if err != nil {
		return nil, err
	}
	return appendExtensionMembers(base, d.Extensions)
}

func (d *Document) UnmarshalJSON(buf []byte) error {
	var members map[string]json.RawMessage
	if err := jsoniter.Unmarshal(buf, &members); err != nil {
		return err
	}
	*d = Document{}
	for name, raw := range members {
		var err error
		switch name {
		case "jsonapi":
			err = jsoniter.Unmarshal(raw, &d.JSONAPI)
		case "data":
			err = d.Data.UnmarshalJSON(raw)
		case "errors":
			err = jsoniter.Unmarshal(raw, &d.Errors)
		case "links":
			// Invoked directly so the link codec's typed errors survive.
			err = d.Links.UnmarshalJSON(raw)
		case "included":
			err = jsoniter.Unmarshal(raw, &d.Included)
		case "meta":
			err = jsoniter.Unmarshal(raw, &d.Meta)
		default:
			if d.Extensions == nil {
				d.Extensions = make(map[string]json.RawMessage)
			}
			d.Extensions[name] = raw
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// appendExtensionMembers splices extension members into an already-marshaled
// object, in lexical member order.
func appendExtensionMembers(base []byte, extensions map[string]json.RawMessage) ([]byte, error) {
	if len(extensions) == 0 {
		return base, nil
	}
	names := make([]string, 0, len(extensions))
	for name := range extensions {
		names = append(names, name)
	}
	sort.Strings(names)

	buf := bytes.NewBuffer(base[:len(base)-1])
	for _, name := range names {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		key, err := jsoniter.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(extensions[name])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ParseDocument parses a JSON:API document, leaving its primary data in
// erased form. An empty or literal-null body produces no document and no
// error. Malformed JSON and malformed links abort the parse; a failed parse
// yields no document at all, never a partially populated one.
func ParseDocument(data []byte) (*Document, error) {
	b := bytes.TrimSpace(data)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil, nil
	}
	var d Document
	if err := d.UnmarshalJSON(b); err != nil {
		return nil, err
	}
	return &d, nil
}

// A document whose primary data has been materialized into a single
// resource of type T, typically a Resource instantiation.
type SingleDocument[T any] struct {
	JSONAPI    *JSONAPI
	Data       *T
	Errors     []Error
	Links      Links
	Included   []ResourceObject
	Meta       map[string]any
	Extensions map[string]json.RawMessage
}

// A document whose primary data has been materialized into a collection of
// resources of type T.
type CollectionDocument[T any] struct {
	JSONAPI    *JSONAPI
	Data       []T
	Errors     []Error
	Links      Links
	Included   []ResourceObject
	Meta       map[string]any
	Extensions map[string]json.RawMessage
}

type typedDocumentObject struct {
	JSONAPI  *JSONAPI         `json:"jsonapi,omitempty"`
	Data     any              `json:"data,omitempty"`
	Errors   []Error          `json:"errors,omitempty"`
	Links    Links            `json:"links,omitempty"`
	Included []ResourceObject `json:"included,omitempty"`
	Meta     map[string]any   `json:"meta,omitempty"`
}

func (d SingleDocument[T]) MarshalJSON() ([]byte, error) {
	obj := typedDocumentObject{
		JSONAPI:  d.JSONAPI,
		Errors:   d.Errors,
		Links:    d.Links,
		Included: d.Included,
		Meta:     d.Meta,
	}
	if d.Data != nil {
		obj.Data = d.Data
	}
	base, err := jsoniter.Marshal(obj)
	if err != nil {
		return nil, err
	}
	return appendExtensionMembers(base, d.Extensions)
}

func (d CollectionDocument[T]) MarshalJSON() ([]byte, error) {
	obj := typedDocumentObject{
		JSONAPI:  d.JSONAPI,
		Errors:   d.Errors,
		Links:    d.Links,
		Included: d.Included,
		Meta:     d.Meta,
	}
	if d.Data != nil {
		obj.Data = d.Data
	}
	base, err := jsoniter.Marshal(obj)
	if err != nil {
		return nil, err
	}
	return appendExtensionMembers(base, d.Extensions)
}

// ProjectSingleDocument materializes a generic document's primary data into
// a single resource of type T. The generic document is left intact; a
// *ShapeMismatchError from a collection-shaped data member does not
// invalidate it.
func ProjectSingleDocument[T any](doc *Document) (*SingleDocument[T], error) {
	resource, err := DecodeSingle[T](doc.Data)
	if err != nil {
		return nil, err
	}
	return &SingleDocument[T]{
		JSONAPI:    doc.JSONAPI,
		Data:       resource,
		Errors:     doc.Errors,
		Links:      doc.Links,
		Included:   doc.Included,
		Meta:       doc.Meta,
		Extensions: doc.Extensions,
	}, nil
}

// ProjectCollectionDocument materializes a generic document's primary data
// into a collection of resources of type T.
func ProjectCollectionDocument[T any](doc *Document) (*CollectionDocument[T], error) {
	resources, err := DecodeCollection[T](doc.Data)
	if err != nil {
		return nil, err
	}
	return &CollectionDocument[T]{
		JSONAPI:    doc.JSONAPI,
		Data:       resources,
		Errors:     doc.Errors,
		Links:      doc.Links,
		Included:   doc.Included,
		Meta:       doc.Meta,
		Extensions: doc.Extensions,
	}, nil
}

// ParseSingleDocument parses a document whose primary data, if present, is
// a single resource of type T. An empty or literal-null body produces no
// document and no error.
func ParseSingleDocument[T any](data []byte) (*SingleDocument[T], error) {
	doc, err := ParseDocument(data)
	if err != nil || doc == nil {
		return nil, err
	}
	return ProjectSingleDocument[T](doc)
}

// ParseCollectionDocument parses a document whose primary data, if present,
// is a collection of resources of type T.
func ParseCollectionDocument[T any](data []byte) (*CollectionDocument[T], error) {
	doc, err := ParseDocument(data)
	if err != nil || doc == nil {
		return nil, err
	}
	return ProjectCollectionDocument[T](doc)
}
