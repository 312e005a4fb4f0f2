package hessian

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map is an insertion-ordered mapping. The encoder writes its pairs in
// insertion order; call headers use it so non-string keys can be rejected.
type Map = orderedmap.OrderedMap[any, any]

// Fields is the ordered field-name to value state of a typed object.
type Fields = orderedmap.OrderedMap[string, any]

// NewMap creates an empty Map.
func NewMap() *Map {
	return orderedmap.New[any, any]()
}

// NewFields creates an empty Fields.
func NewFields() *Fields {
	return orderedmap.New[string, any]()
}

// Object is a typed object. HessianType returns the fully-qualified type
// name written after the `t` tag; HessianState returns the fields in the
// order they are written.
type Object interface {
	HessianType() string
	HessianState() *Fields
}

// Remote identifies a remote object reference.
type Remote interface {
	RemoteType() string
	RemoteURL() string
}

// BinaryValue is an opaque byte blob, encoded with the b/B chunk tags.
type BinaryValue interface {
	BinaryBytes() []byte
}

// Invocation is an RPC call frame.
type Invocation interface {
	Method() string
	Args() []any
	// Headers may be nil. Keys must be strings.
	Headers() *Map
	Version() uint8
	// Overload enables appending argument type tags to the method name.
	Overload() bool
}
