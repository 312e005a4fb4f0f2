package wire

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"
)

type chunk struct {
	tag  byte
	size int
	body []byte
}

// splitChunks parses a chunk sequence whose bodies are raw bytes.
func splitChunks(t *testing.T, data []byte) []chunk {
	t.Helper()
	var out []chunk
	for len(data) > 0 {
		if len(data) < 3 {
			t.Fatalf("truncated chunk header: % x", data)
		}
		c := chunk{tag: data[0], size: int(binary.BigEndian.Uint16(data[1:3]))}
		data = data[3:]
		if len(data) < c.size {
			t.Fatalf("truncated chunk body: want %d bytes, have %d", c.size, len(data))
		}
		c.body = data[:c.size]
		data = data[c.size:]
		out = append(out, c)
	}
	return out
}

func TestWriteChunkedBytes(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		chunks []int
	}{
		{"empty", 0, []int{0}},
		{"small", 10, []int{10}},
		{"exactly max", MaxChunk, []int{MaxChunk}},
		{"max plus one", MaxChunk + 1, []int{MaxChunk, 1}},
		{"two full chunks", 2 * MaxChunk, []int{MaxChunk, MaxChunk}},
		{"two full plus tail", 2*MaxChunk + 5, []int{MaxChunk, MaxChunk, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := make([]byte, tt.size)
			for i := range payload {
				payload[i] = byte(i)
			}

			var w Writer
			w.WriteChunkedBytes('b', 'B', payload)

			chunks := splitChunks(t, w.Bytes())
			if len(chunks) != len(tt.chunks) {
				t.Fatalf("got %d chunks, want %d", len(chunks), len(tt.chunks))
			}

			var joined []byte
			for i, c := range chunks {
				wantTag := byte('b')
				if i == len(chunks)-1 {
					wantTag = 'B'
				}
				if c.tag != wantTag {
					t.Errorf("chunk %d tag = %c, want %c", i, c.tag, wantTag)
				}
				if c.size != tt.chunks[i] {
					t.Errorf("chunk %d size = %d, want %d", i, c.size, tt.chunks[i])
				}
				joined = append(joined, c.body...)
			}
			if !bytes.Equal(joined, payload) {
				t.Error("reassembled payload differs from input")
			}
		})
	}
}

func TestWriteChunkedText_CountsCodePoints(t *testing.T) {
	var w Writer
	w.WriteChunkedText('s', 'S', "héllo")

	want := append([]byte{'S', 0x00, 0x05}, "héllo"...)
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("got % x, want % x", w.Bytes(), want)
	}
}

func TestWriteChunkedText_Boundary(t *testing.T) {
	t.Run("65535 chars", func(t *testing.T) {
		var w Writer
		w.WriteChunkedText('s', 'S', strings.Repeat("a", MaxChunk))

		chunks := splitChunks(t, w.Bytes())
		if len(chunks) != 1 || chunks[0].tag != 'S' || chunks[0].size != MaxChunk {
			t.Fatalf("want a single S chunk of %d, got %d chunks", MaxChunk, len(chunks))
		}
	})

	t.Run("65536 chars", func(t *testing.T) {
		var w Writer
		w.WriteChunkedText('s', 'S', strings.Repeat("a", MaxChunk)+"b")

		chunks := splitChunks(t, w.Bytes())
		if len(chunks) != 2 {
			t.Fatalf("got %d chunks, want 2", len(chunks))
		}
		if chunks[0].tag != 's' || chunks[0].size != MaxChunk {
			t.Errorf("first chunk = %c/%d, want s/%d", chunks[0].tag, chunks[0].size, MaxChunk)
		}
		if chunks[1].tag != 'S' || chunks[1].size != 1 || string(chunks[1].body) != "b" {
			t.Errorf("last chunk = %c/%d/%q, want S/1/\"b\"", chunks[1].tag, chunks[1].size, chunks[1].body)
		}
	})

	t.Run("multibyte split", func(t *testing.T) {
		// 65535 two-byte runes followed by one three-byte rune.
		s := strings.Repeat("é", MaxChunk) + "€"

		var w Writer
		w.WriteChunkedText('s', 'S', s)
		data := w.Bytes()

		if data[0] != 's' || binary.BigEndian.Uint16(data[1:3]) != MaxChunk {
			t.Fatalf("first header = % x, want s ff ff", data[:3])
		}
		body := data[3 : 3+2*MaxChunk]
		if string(body) != strings.Repeat("é", MaxChunk) {
			t.Error("first chunk body should hold exactly the two-byte runes")
		}
		tail := data[3+2*MaxChunk:]
		want := append([]byte{'S', 0x00, 0x01}, "€"...)
		if !bytes.Equal(tail, want) {
			t.Errorf("tail = % x, want % x", tail, want)
		}
	})
}

func TestRuneOffset(t *testing.T) {
	tests := []struct {
		s    string
		n    int
		want int
	}{
		{"abc", 0, 0},
		{"abc", 2, 2},
		{"abc", 5, 3},
		{"éa", 1, 2},
		{"a€b", 2, 4},
		{"", 1, 0},
	}

	for _, tc := range tests {
		if got := runeOffset(tc.s, tc.n); got != tc.want {
			t.Errorf("runeOffset(%q, %d) = %d, want %d", tc.s, tc.n, got, tc.want)
		}
	}
}
