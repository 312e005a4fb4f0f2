package encoder

import (
	"encoding/binary"
	"testing"
	"unicode/utf8"
)

// cat concatenates wire fragments: bytes, runes, strings and byte slices.
func cat(parts ...any) []byte {
	var out []byte
	for _, p := range parts {
		switch v := p.(type) {
		case byte:
			out = append(out, v)
		case rune:
			out = append(out, byte(v))
		case string:
			out = append(out, v...)
		case []byte:
			out = append(out, v...)
		default:
			panic("cat: unsupported fragment")
		}
	}
	return out
}

func be16(n int) []byte {
	return binary.BigEndian.AppendUint16(nil, uint16(n))
}

func be32(n int32) []byte {
	return binary.BigEndian.AppendUint32(nil, uint32(n))
}

func be64(n int64) []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(n))
}

// text is the single-chunk encoding of a short string.
func text(s string) []byte {
	return cat('S', be16(utf8.RuneCountInString(s)), s)
}

func i32(n int32) []byte {
	return cat('I', be32(n))
}

func mustEncode(t *testing.T, v any) []byte {
	t.Helper()
	data, err := Encode(v)
	if err != nil {
		t.Fatalf("Encode(%#v) failed: %v", v, err)
	}
	return data
}
