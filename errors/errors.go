package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseCompile Phase = "compile" // dispatch table construction
	PhaseEncode  Phase = "encode"  // Go value to wire bytes
	PhaseParse   Phase = "parse"   // JSON value notation
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupportedType Kind = "unsupported_type"
	KindStringEncoding  Kind = "string_encoding"
	KindHeaderKeyType   Kind = "header_key_type"
	KindInvalidUTF8     Kind = "invalid_utf8"
	KindOverflow        Kind = "overflow"
	KindCycle           Kind = "cycle"
	KindDuplicate       Kind = "duplicate"
	KindInvalidData     Kind = "invalid_data"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	GoType   string
	WireType string
	Detail   string
	Path     []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(joinPath(e.Path))
	}

	if e.GoType != "" || e.WireType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.WireType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", wire type ")
			b.WriteString(e.WireType)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("wire type ")
			b.WriteString(e.WireType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.WireType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// joinPath renders index segments ("[2]") glued to their parent and
// everything else dot separated.
func joinPath(path []string) string {
	var b strings.Builder
	for i, p := range path {
		if i > 0 && !strings.HasPrefix(p, "[") {
			b.WriteByte('.')
		}
		b.WriteString(p)
	}
	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// WithParent prepends a path segment. Encoders call it while unwinding so
// the innermost failure ends up with its full location.
func (e *Error) WithParent(segment string) *Error {
	path := make([]string, 0, len(e.Path)+1)
	path = append(path, segment)
	e.Path = append(path, e.Path...)
	return e
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// WireType sets the Hessian wire type name
func (b *Builder) WireType(t string) *Builder {
	b.err.WireType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnsupportedType creates an error for a value no dispatch entry accepts
func UnsupportedType(path []string, goType string) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindUnsupportedType,
		Path:   path,
		GoType: goType,
		Detail: "no encoder registered for this type",
	}
}

// StringEncoding creates an error for a byte string with a non-ASCII byte
func StringEncoding(path []string, offset int, b byte) *Error {
	return &Error{
		Phase:    PhaseEncode,
		Kind:     KindStringEncoding,
		Path:     path,
		WireType: "string",
		Detail: fmt.Sprintf("byte 0x%02x at offset %d is outside 0x00-0x7f; "+
			"refusing to guess the encoding, use protocol.Binary or string instead", b, offset),
		Value: b,
	}
}

// HeaderKeyType creates an error for a call header keyed by a non-string
func HeaderKeyType(goType string, key any) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindHeaderKeyType,
		Path:   []string{"headers"},
		GoType: goType,
		Detail: "call header keys must be strings",
		Value:  key,
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(phase Phase, path []string, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Path:   path,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, path []string, value any, target string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindOverflow,
		Path:     path,
		WireType: target,
		Detail:   fmt.Sprintf("value %v overflows %s", value, target),
		Value:    value,
	}
}

// Cycle creates an error for a cyclic type hierarchy
func Cycle(nodes []string) *Error {
	return &Error{
		Phase:  PhaseCompile,
		Kind:   KindCycle,
		Detail: fmt.Sprintf("cycle detected in type hierarchy among %s", strings.Join(nodes, ", ")),
	}
}

// Duplicate creates an error for a type registered twice
func Duplicate(name string) *Error {
	return &Error{
		Phase:  PhaseCompile,
		Kind:   KindDuplicate,
		Detail: fmt.Sprintf("type %s registered more than once", name),
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}
