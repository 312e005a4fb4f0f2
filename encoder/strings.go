package encoder

import (
	"reflect"
	"unicode/utf8"

	"github.com/wippyai/hessian"
	"github.com/wippyai/hessian/encoder/internal/wire"
	"github.com/wippyai/hessian/errors"
)

// encodeString writes text. Chunk lengths count code points.
func encodeString(_ *Encoder, w *wire.Writer, v any, _ int) (string, error) {
	return "", writeText(w, reflect.ValueOf(v).String())
}

func writeText(w *wire.Writer, s string) error {
	if !utf8.ValidString(s) {
		return errors.InvalidUTF8(errors.PhaseEncode, nil, []byte(s))
	}
	w.WriteChunkedText('s', 'S', s)
	return nil
}

// encodeASCII writes a byte string. Without a declared charset only ASCII
// is unambiguous, so any byte above 0x7f is rejected.
func encodeASCII(_ *Encoder, w *wire.Writer, v any, _ int) (string, error) {
	b := reflect.ValueOf(v).Bytes()
	for i, c := range b {
		if c >= utf8.RuneSelf {
			return "", errors.StringEncoding(nil, i, c)
		}
	}
	w.WriteChunkedBytes('s', 'S', b)
	return "", nil
}

func encodeBinary(_ *Encoder, w *wire.Writer, v any, _ int) (string, error) {
	w.WriteChunkedBytes('b', 'B', v.(hessian.BinaryValue).BinaryBytes())
	return "", nil
}
