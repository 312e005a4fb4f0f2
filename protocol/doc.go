// Package protocol provides plain carrier types for Hessian values that
// have no natural Go counterpart.
//
// Each type except Tuple satisfies one of the capability interfaces in the
// root package; any other type implementing the same interface encodes the
// same way:
//
//	Binary       hessian.BinaryValue   opaque bytes (b/B chunks)
//	Remote       hessian.Remote        remote object reference (r t ...)
//	TypedObject  hessian.Object        named object with ordered fields
//	Call         hessian.Invocation    RPC call frame (c ... z)
//	Tuple        -                     fixed-length list (V l n ... z)
//
// Carriers are read-only to the encoder.
package protocol
