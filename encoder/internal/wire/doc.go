// Package wire provides the byte-level primitives of the Hessian 1.0 wire
// format: an append-only writer with big-endian fixed-width integers and
// the length-bounded chunking loop shared by strings and binaries.
//
// # Chunking
//
// Payloads longer than MaxChunk units are split. Every chunk but the last
// carries the continuation tag, the last carries the final tag:
//
//	s 0xffff <65535 units>  s 0xffff <65535 units>  S <n> <n units>
//
// A final chunk is always written, so an empty payload encodes as the
// final tag followed by a zero length.
//
// This package is internal to the encoder.
package wire
