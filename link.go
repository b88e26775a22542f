package jsonapi

import (
	"bytes"
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

// An object used to represent links.
//
// Within this object, a link MUST be represented as either:
//
// - a string whose value is a URI-reference [RFC3986 Section 4.1] pointing to the link’s target,
// - a link object or
// - null if the link does not exist.
type Links map[string]*Link

// UnmarshalJSON implements json.Unmarshaler. Each entry is decoded through
// the link codec; a null entry becomes a nil link. Entries are decoded from
// their raw members directly so that a *MalformedLinkError survives intact
// rather than being flattened into a plain string by the JSON codec's
// unmarshaler plumbing.
func (ls *Links) UnmarshalJSON(buf []byte) error {
	var members map[string]json.RawMessage
	if err := jsoniter.Unmarshal(buf, &members); err != nil {
		return err
	}
	if members == nil {
		*ls = nil
		return nil
	}
	out := make(Links, len(members))
	for name, raw := range members {
		b := bytes.TrimSpace(raw)
		if len(b) > 0 && b[0] == 'n' {
			out[name] = nil
			continue
		}
		link := new(Link)
		if err := link.UnmarshalJSON(raw); err != nil {
			return err
		}
		out[name] = link
	}
	*ls = out
	return nil
}

// A “link object” is an object that represents a web link.
//
// On the wire a link is either a bare URI-reference string or an object. A
// Link whose every optional member is absent is equivalent to the bare
// string of its HREF, and the codec emits the compact string form in that
// case.
type Link struct {
	// A string whose value is a URI-reference [RFC3986 Section 4.1] pointing to the link’s target.
	HREF string

	// A string indicating the link’s relation type. The string MUST be a valid link relation type.
	RelationType string

	// A link to a description document (e.g. OpenAPI or JSON Schema) for the link target.
	DescribedBy *Link

	// A string which serves as a label for the destination of a link such that it can be used as a
	// human-readable identifier (e.g., a menu entry).
	Title string

	// A string indicating the media type of the link’s target.
	Type string

	// A string indicating the language of the link’s target. The string MUST be a valid language
	// tag [RFC5646].
	HREFLanguage string

	// A meta object containing non-standard meta-information about the link.
	Meta map[string]any
}

// NewLink returns a link with the given target and no metadata.
func NewLink(href string) *Link {
	return &Link{HREF: href}
}

// linkObject is the wire shape of the object form. Field order here is the
// member order of serialized link objects.
type linkObject struct {
	HREF         *string        `json:"href,omitempty"`
	RelationType string         `json:"rel,omitempty"`
	DescribedBy  *Link          `json:"describedby,omitempty"`
	Title        string         `json:"title,omitempty"`
	Type         string         `json:"type,omitempty"`
	HREFLanguage string         `json:"hreflang,omitempty"`
	Meta         map[string]any `json:"meta,omitempty"`
}

func (l Link) isCompact() bool {
	return l.HREF != "" && l.RelationType == "" && l.DescribedBy == nil && l.Title == "" &&
		l.Type == "" && l.HREFLanguage == "" && len(l.Meta) == 0
}

// MarshalJSON implements json.Marshaler. Links with no optional members are
// emitted as their bare HREF string; all others as objects with absent
// members omitted. DescribedBy links recurse through the same codec.
func (l Link) MarshalJSON() ([]byte, error) {
	if l.isCompact() {
		return jsoniter.Marshal(l.HREF)
	}
	obj := linkObject{
		RelationType: l.RelationType,
		DescribedBy:  l.DescribedBy,
		Title:        l.Title,
		Type:         l.Type,
		HREFLanguage: l.HREFLanguage,
		Meta:         l.Meta,
	}
	if l.HREF != "" {
		href := l.HREF
		obj.HREF = &href
	}
	return jsoniter.Marshal(obj)
}

// UnmarshalJSON implements json.Unmarshaler. It accepts the bare string
// form and the object form; the object form must carry an href member.
// Unrecognized members of the object form are ignored. A JSON null leaves
// the link zero, which callers holding a *Link see as no link at all.
func (l *Link) UnmarshalJSON(buf []byte) error {
	b := bytes.TrimSpace(buf)
	if len(b) == 0 {
		return &MalformedLinkError{reason: "link must be a string or object"}
	}
	switch b[0] {
	case 'n':
		*l = Link{}
		return nil
	case '"':
		*l = Link{}
		return jsoniter.Unmarshal(b, &l.HREF)
	case '{':
		// The describedby member is decoded from its raw bytes rather than
		// through a nested *Link field so the recursive codec's own
		// *MalformedLinkError survives intact.
		var obj struct {
			HREF         *string         `json:"href"`
			RelationType string          `json:"rel"`
			DescribedBy  json.RawMessage `json:"describedby"`
			Title        string          `json:"title"`
			Type         string          `json:"type"`
			HREFLanguage string          `json:"hreflang"`
			Meta         map[string]any  `json:"meta"`
		}
		if err := jsoniter.Unmarshal(b, &obj); err != nil {
			return err
		}
		if obj.HREF == nil {
			return &MalformedLinkError{reason: "href is required for link objects"}
		}
		*l = Link{
			HREF:         *obj.HREF,
			RelationType: obj.RelationType,
			Title:        obj.Title,
			Type:         obj.Type,
			HREFLanguage: obj.HREFLanguage,
			Meta:         obj.Meta,
		}
		if db := bytes.TrimSpace(obj.DescribedBy); len(db) > 0 && db[0] != 'n' {
			nested := new(Link)
			if err := nested.UnmarshalJSON(db); err != nil {
				return err
			}
			l.DescribedBy = nested
		}
		return nil
	}
	return &MalformedLinkError{reason: "link must be a string or object"}
}
