package wire

import "unicode/utf8"

// MaxChunk is the largest unit count a 16-bit length field can carry.
const MaxChunk = 0xFFFF

// WriteChunkedBytes writes p in chunks of at most MaxChunk bytes.
func (w *Writer) WriteChunkedBytes(midTag, finalTag byte, p []byte) {
	w.chunks(midTag, finalTag, len(p), func(n int) {
		w.WriteBytes(p[:n])
		p = p[n:]
	})
}

// WriteChunkedText writes s in chunks of at most MaxChunk code points.
// Lengths count code points; the chunk bodies are UTF-8.
func (w *Writer) WriteChunkedText(midTag, finalTag byte, s string) {
	w.chunks(midTag, finalTag, utf8.RuneCountInString(s), func(n int) {
		off := runeOffset(s, n)
		w.WriteString(s[:off])
		s = s[off:]
	})
}

func (w *Writer) chunks(midTag, finalTag byte, units int, emit func(n int)) {
	for units > MaxChunk {
		w.Byte(midTag)
		w.WriteU16(MaxChunk)
		emit(MaxChunk)
		units -= MaxChunk
	}
	w.Byte(finalTag)
	w.WriteU16(uint16(units))
	emit(units)
}

// runeOffset returns the byte offset just past the first n code points of s.
func runeOffset(s string, n int) int {
	if n >= len(s) {
		return len(s)
	}
	off := 0
	for i := 0; i < n && off < len(s); i++ {
		if s[off] < utf8.RuneSelf {
			off++
			continue
		}
		_, size := utf8.DecodeRuneInString(s[off:])
		off += size
	}
	return off
}
