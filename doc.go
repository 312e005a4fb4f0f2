// Package hessian provides a Go encoder for the Hessian 1.0.2 binary RPC
// serialization protocol.
//
// The encoder converts in-memory Go values into the exact byte layout
// defined by http://hessian.caucho.com/doc/hessian-1.0-spec.xtp. It is
// one-directional: there is no decoder in this module.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	hessian/             Root package with capability interfaces and ordered maps
//	├── encoder/         Type dispatch and wire encoding rules
//	├── protocol/        Plain carrier types: Binary, Remote, TypedObject, Call, Tuple
//	├── jsonvalue/       Order-preserving JSON notation for Hessian values
//	├── errors/          Structured error types
//	└── cmd/hessian/     CLI and interactive encoder
//
// # Quick Start
//
//	data, err := encoder.Encode(int32(42))
//	// data == []byte{'I', 0x00, 0x00, 0x00, 0x2a}
//
//	call := protocol.NewCall("foo", int32(1), "bar")
//	call.EnableOverload = true
//	frame, err := encoder.Encode(call)
//	// c 0x01 0x00 m 0x000e "foo_int_string" I... S... z
//
// # Value Mapping
//
//	Go value                         Hessian
//	──────────────────────────────────────────
//	nil                              null      N
//	bool                             boolean   T / F
//	int8..int32, uint8, uint16, int  int       I  (int only within 32 bits)
//	int64, uint32, uint64, int       long      L
//	float32, float64                 double    D
//	time.Time                        date      d
//	string                           string    s/S chunks
//	[]byte (ASCII only)              string    s/S chunks
//	BinaryValue                      binary    b/B chunks
//	slice                            list      V l -1 ... z
//	array, protocol.Tuple            list      V l n ... z
//	*Map, *Fields, Go map            map       M ... z
//	Object                           object    M t name ... z
//	Remote                           remote    r t name S url
//	Invocation                       call      c ... z
//
// # Thread Safety
//
// Encoders are stateless once constructed and safe for concurrent use.
package hessian
