package protocol

import (
	"strings"

	"github.com/wippyai/hessian"
)

// TypedObject is a generic object carrier for types that do not implement
// hessian.Object themselves.
type TypedObject struct {
	Fields *hessian.Fields
	Type   string
}

// NewObject creates an object of the given fully-qualified type name with
// no fields.
func NewObject(typeName string) *TypedObject {
	return &TypedObject{
		Type:   typeName,
		Fields: hessian.NewFields(),
	}
}

// Set appends a field, or replaces its value keeping the original
// position when the name is already present.
func (o *TypedObject) Set(name string, value any) *TypedObject {
	if o.Fields == nil {
		o.Fields = hessian.NewFields()
	}
	o.Fields.Set(name, value)
	return o
}

func (o *TypedObject) HessianType() string { return o.Type }

func (o *TypedObject) HessianState() *hessian.Fields {
	if o.Fields == nil {
		return hessian.NewFields()
	}
	return o.Fields
}

// SimpleName returns the part of a fully-qualified type name after the
// last dot.
func SimpleName(typeName string) string {
	if i := strings.LastIndexByte(typeName, '.'); i >= 0 {
		return typeName[i+1:]
	}
	return typeName
}
