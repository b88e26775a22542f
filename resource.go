package jsonapi

import (
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

// A resource object, parameterized by the concrete types of its attributes
// and relationships members. Callers with a known schema bind A (and
// optionally R) to their own types and decoding recurses into them
// structurally; callers without one use ResourceObject.
//
// At least one of Id and Lid is expected by convention, but the codec does
// not enforce that.
type Resource[A, R any] struct {
	Type string `json:"type"`

	Id string `json:"id,omitempty"`

	// A local identifier, used to associate resources created in the same
	// request before they have server-assigned ids.
	Lid string `json:"lid,omitempty"`

	// An attributes object representing some of the resource’s data.
	Attributes A `json:"attributes,omitempty"`

	// A relationships object describing relationships between the resource and other JSON:API
	// resources.
	Relationships R `json:"relationships,omitempty"`

	// A links object containing links related to the resource.
	Links Links `json:"links,omitempty"`

	// A meta object containing non-standard meta-information about the resource that can not be
	// represented as an attribute or relationship.
	Meta map[string]any `json:"meta,omitempty"`
}

// ResourceObject is the schema-agnostic resource shape: attributes as an
// open map and relationships as an open name → Relationship map.
type ResourceObject = Resource[map[string]any, map[string]Relationship]

// A resource identifier object: the minimal reference to a resource, used
// as relationship linkage.
type ResourceIdentifier struct {
	Type string `json:"type"`

	Id string `json:"id,omitempty"`

	Lid string `json:"lid,omitempty"`

	// A meta object containing non-standard meta-information.
	Meta map[string]any `json:"meta,omitempty"`
}

func (r *ResourceIdentifier) UnmarshalJSON(buf []byte) error {
	type alias ResourceIdentifier
	aux := struct {
		Type *string `json:"type"`
		*alias
	}{
		alias: (*alias)(r),
	}
	if err := jsoniter.Unmarshal(buf, &aux); err != nil {
		return err
	}
	if aux.Type == nil {
		return &decodeError{msg: "resource identifiers require a type member"}
	}
	r.Type = *aux.Type
	return nil
}

// decodeError is a structural decode failure raised by this package's own
// unmarshalers, as opposed to ones propagated from the JSON codec.
type decodeError struct {
	msg string
}

func (e *decodeError) Error() string {
	return e.msg
}

// A relationship between a resource and other resources. Its Data member
// holds resource linkage: absent, a single resource identifier, or an array
// of resource identifiers, kept in erased form until decoded.
type Relationship struct {
	// A links object containing at least one of the following:
	//
	// - self: a link for the relationship itself (a “relationship link”)
	// - related: a related resource link
	// - a member defined by an applied extension
	Links Links

	// The resource linkage.
	Data PrimaryData

	// A meta object containing non-standard meta-information about the relationship.
	Meta map[string]any

	// Members contributed by applied extensions, kept verbatim.
	Extensions map[string]json.RawMessage
}

// Identifier decodes the relationship's linkage as a single resource
// identifier. It returns nil and no error when the linkage is absent, and a
// *ShapeMismatchError when the linkage is an array.
func (r Relationship) Identifier() (*ResourceIdentifier, error) {
	return DecodeSingle[ResourceIdentifier](r.Data)
}

// Identifiers decodes the relationship's linkage as an array of resource
// identifiers. It returns nil and no error when the linkage is absent, and
// a *ShapeMismatchError when the linkage is a single object.
func (r Relationship) Identifiers() ([]ResourceIdentifier, error) {
	return DecodeCollection[ResourceIdentifier](r.Data)
}

type relationshipObject struct {
	Links Links          `json:"links,omitempty"`
	Data  *PrimaryData   `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
}

func (r Relationship) MarshalJSON() ([]byte, error) {
	obj := relationshipObject{
		Links: r.Links,
		Meta:  r.Meta,
	}
	if !r.Data.IsAbsent() {
		obj.Data = &r.Data
	}
	base, err := jsoniter.Marshal(obj)
	if err != nil {
		return nil, err
	}
	return appendExtensionMembers(base, r.Extensions)
}

func (r *Relationship) UnmarshalJSON(buf []byte) error {
	var members map[string]json.RawMessage
	if err := jsoniter.Unmarshal(buf, &members); err != nil {
		return err
	}
	*r = Relationship{}
	for name, raw := range members {
		var err error
		switch name {
		case "links":
			// Invoked directly so the link codec's typed errors survive.
			err = r.Links.UnmarshalJSON(raw)
		case "data":
			err = r.Data.UnmarshalJSON(raw)
		case "meta":
			err = jsoniter.Unmarshal(raw, &r.Meta)
		default:
			if r.Extensions == nil {
				r.Extensions = make(map[string]json.RawMessage)
			}
			r.Extensions[name] = raw
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}
