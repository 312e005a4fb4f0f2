package encoder

import (
	"math"
	"reflect"
	"time"

	"github.com/wippyai/hessian/encoder/internal/wire"
	"github.com/wippyai/hessian/errors"
)

func encodeNull(_ *Encoder, w *wire.Writer, _ any, _ int) (string, error) {
	w.Byte('N')
	return "", nil
}

func encodeBool(_ *Encoder, w *wire.Writer, v any, _ int) (string, error) {
	if reflect.ValueOf(v).Bool() {
		w.Byte('T')
	} else {
		w.Byte('F')
	}
	return "", nil
}

func encodeInt(_ *Encoder, w *wire.Writer, v any, _ int) (string, error) {
	n, _ := integerValue(reflect.ValueOf(v))
	w.Byte('I')
	w.WriteI32(int32(n))
	return "", nil
}

func encodeLong(_ *Encoder, w *wire.Writer, v any, _ int) (string, error) {
	n, ok := integerValue(reflect.ValueOf(v))
	if !ok {
		return "", errors.Overflow(errors.PhaseEncode, nil, v, "long")
	}
	w.Byte('L')
	w.WriteI64(n)
	return "", nil
}

// integerValue widens any bool or integer kind to int64. ok is false for
// unsigned values above math.MaxInt64.
func integerValue(rv reflect.Value) (int64, bool) {
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return 1, true
		}
		return 0, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	}
	return 0, false
}

func encodeDouble(_ *Encoder, w *wire.Writer, v any, _ int) (string, error) {
	w.Byte('D')
	w.WriteF64(reflect.ValueOf(v).Float())
	return "", nil
}

// encodeDate writes milliseconds since the epoch. Sub-millisecond precision
// is dropped, not rounded.
func encodeDate(_ *Encoder, w *wire.Writer, v any, _ int) (string, error) {
	w.Byte('d')
	w.WriteI64(v.(time.Time).UnixMilli())
	return "", nil
}
