package jsonapi

import "fmt"

// MalformedLinkError is returned when a link's JSON is neither a string nor
// an object, or when the object form has no href member. It aborts the
// enclosing document parse.
type MalformedLinkError struct {
	reason string
}

func (e *MalformedLinkError) Error() string {
	return e.reason
}

// ShapeMismatchError is returned when a projection is asked to materialize
// primary data of the opposite shape, e.g. collection-shaped data through
// DecodeSingle. The generic document the data came from remains intact and
// usable.
type ShapeMismatchError struct {
	reason string
}

func (e *ShapeMismatchError) Error() string {
	return e.reason
}

// TransportError wraps a network-level failure from the fetch client. The
// codec is never invoked when one occurs.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
