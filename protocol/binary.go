package protocol

// Binary wraps bytes that must be sent as a binary blob rather than as an
// ASCII byte string.
type Binary struct {
	Value []byte
}

// BinaryBytes returns the wrapped bytes.
func (b Binary) BinaryBytes() []byte {
	return b.Value
}

// Tuple is a fixed-length list. Slices encode with an unknown length; a
// Tuple writes its element count.
type Tuple []any
