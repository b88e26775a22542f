package jsonapi

import (
	"encoding/base64"
	"net/url"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack"
)

// EncodeCursor serializes a page cursor into an opaque URL-safe string,
// suitable for use in pagination link query parameters.
func EncodeCursor(cursor any) (string, error) {
	b, err := msgpack.Marshal(cursor)
	if err != nil {
		return "", errors.Wrap(err, "unable to serialize cursor")
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// DecodeCursor deserializes a cursor previously produced by EncodeCursor.
func DecodeCursor[T any](s string) (*T, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "malformed cursor")
	}
	var cursor T
	if err := msgpack.Unmarshal(b, &cursor); err != nil {
		return nil, errors.Wrap(err, "malformed cursor")
	}
	return &cursor, nil
}

// PaginationCursors holds the cursors for the conventional pagination
// links. Nil entries produce no link.
type PaginationCursors struct {
	First any
	Prev  any
	Next  any
	Last  any
}

// PaginationLinks builds first/prev/next/last links from cursors, placing
// each encoded cursor in the named query parameter of baseURL.
func PaginationLinks(baseURL, param string, cursors PaginationCursors) (Links, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse base url")
	}

	links := Links{}
	add := func(name string, cursor any) error {
		if cursor == nil {
			return nil
		}
		s, err := EncodeCursor(cursor)
		if err != nil {
			return err
		}
		u := *base
		q := u.Query()
		q.Set(param, s)
		u.RawQuery = q.Encode()
		links[name] = NewLink(u.String())
		return nil
	}

	if err := add("first", cursors.First); err != nil {
		return nil, err
	}
	if err := add("prev", cursors.Prev); err != nil {
		return nil, err
	}
	if err := add("next", cursors.Next); err != nil {
		return nil, err
	}
	if err := add("last", cursors.Last); err != nil {
		return nil, err
	}
	return links, nil
}
