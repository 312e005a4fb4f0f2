package protocol

import (
	"github.com/wippyai/hessian"
)

// DefaultVersion is the major protocol version written by NewCall.
const DefaultVersion = 1

// Call is an RPC call frame.
type Call struct {
	HeaderMap      *hessian.Map
	Name           string
	Arguments      []any
	MajorVersion   uint8
	EnableOverload bool
}

// NewCall creates a version 1 call with overload naming disabled.
func NewCall(method string, args ...any) *Call {
	return &Call{
		Name:         method,
		Arguments:    args,
		MajorVersion: DefaultVersion,
	}
}

// SetHeader appends a header. Header names are written in insertion order.
func (c *Call) SetHeader(name string, value any) *Call {
	if c.HeaderMap == nil {
		c.HeaderMap = hessian.NewMap()
	}
	c.HeaderMap.Set(name, value)
	return c
}

func (c *Call) Method() string        { return c.Name }
func (c *Call) Args() []any           { return c.Arguments }
func (c *Call) Headers() *hessian.Map { return c.HeaderMap }
func (c *Call) Version() uint8        { return c.MajorVersion }
func (c *Call) Overload() bool        { return c.EnableOverload }
