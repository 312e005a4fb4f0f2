package wire

import (
	"encoding/binary"
	"math"
)

// Writer accumulates encoded bytes. The zero value is ready to use.
type Writer struct {
	buf []byte
}

// NewWriter creates a Writer with room for size bytes.
func NewWriter(size int) *Writer {
	return &Writer{buf: make([]byte, 0, size)}
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Byte writes a single byte.
func (w *Writer) Byte(b byte) {
	w.buf = append(w.buf, b)
}

// WriteBytes writes a byte slice.
func (w *Writer) WriteBytes(data []byte) {
	w.buf = append(w.buf, data...)
}

// WriteString writes the bytes of s without a length prefix.
func (w *Writer) WriteString(s string) {
	w.buf = append(w.buf, s...)
}

// WriteU16 writes a big-endian uint16.
func (w *Writer) WriteU16(v uint16) {
	w.buf = binary.BigEndian.AppendUint16(w.buf, v)
}

// WriteI32 writes a big-endian two's-complement int32.
func (w *Writer) WriteI32(v int32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, uint32(v))
}

// WriteI64 writes a big-endian two's-complement int64.
func (w *Writer) WriteI64(v int64) {
	w.buf = binary.BigEndian.AppendUint64(w.buf, uint64(v))
}

// WriteF64 writes a big-endian IEEE-754 binary64.
func (w *Writer) WriteF64(v float64) {
	w.buf = binary.BigEndian.AppendUint64(w.buf, math.Float64bits(v))
}

// WriteShort writes tag, a 16-bit length and the bytes of s. Callers check
// len(s) <= MaxChunk first.
func (w *Writer) WriteShort(tag byte, s string) {
	w.Byte(tag)
	w.WriteU16(uint16(len(s)))
	w.WriteString(s)
}
