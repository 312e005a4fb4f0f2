package encoder

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/wippyai/hessian"
	"github.com/wippyai/hessian/encoder/internal/wire"
	"github.com/wippyai/hessian/errors"
	"github.com/wippyai/hessian/protocol"
)

// encodeList writes a variable-length list. The count field is -1.
func encodeList(e *Encoder, w *wire.Writer, v any, depth int) (string, error) {
	w.Byte('V')
	w.Byte('l')
	w.WriteI32(-1)
	if err := e.encodeElements(w, reflect.ValueOf(v), depth); err != nil {
		return "", err
	}
	w.Byte('z')
	return "", nil
}

// encodeTuple writes a fixed-length list carrying its element count.
func encodeTuple(e *Encoder, w *wire.Writer, v any, depth int) (string, error) {
	rv := reflect.ValueOf(v)
	if rv.Len() > math.MaxInt32 {
		return "", errors.Overflow(errors.PhaseEncode, nil, rv.Len(), "list length")
	}
	w.Byte('V')
	w.Byte('l')
	w.WriteI32(int32(rv.Len()))
	if err := e.encodeElements(w, rv, depth); err != nil {
		return "", err
	}
	w.Byte('z')
	return "", nil
}

func (e *Encoder) encodeElements(w *wire.Writer, rv reflect.Value, depth int) error {
	for i := 0; i < rv.Len(); i++ {
		if _, err := e.encodeValue(w, rv.Index(i).Interface(), depth+1); err != nil {
			return withParent(err, index(i))
		}
	}
	return nil
}

// encodeMap writes M (key value)* z. Ordered maps keep insertion order;
// native Go maps are sorted by the encoded bytes of their keys so the
// output is deterministic.
func encodeMap(e *Encoder, w *wire.Writer, v any, depth int) (string, error) {
	w.Byte('M')
	switch m := v.(type) {
	case *hessian.Map:
		for pair := m.Oldest(); pair != nil; pair = pair.Next() {
			if err := e.encodePair(w, pair.Key, pair.Value, depth); err != nil {
				return "", err
			}
		}
	case *hessian.Fields:
		for pair := m.Oldest(); pair != nil; pair = pair.Next() {
			if err := e.encodePair(w, pair.Key, pair.Value, depth); err != nil {
				return "", err
			}
		}
	default:
		if err := e.encodeNativeMap(w, reflect.ValueOf(v), depth); err != nil {
			return "", err
		}
	}
	w.Byte('z')
	return "", nil
}

func (e *Encoder) encodePair(w *wire.Writer, key, value any, depth int) error {
	if _, err := e.encodeValue(w, key, depth+1); err != nil {
		return withParent(err, "{key}")
	}
	if _, err := e.encodeValue(w, value, depth+1); err != nil {
		return withParent(err, keySegment(key))
	}
	return nil
}

type encodedPair struct {
	key, value []byte
}

func (e *Encoder) encodeNativeMap(w *wire.Writer, rv reflect.Value, depth int) error {
	pairs := make([]encodedPair, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key := iter.Key().Interface()

		kw := wire.NewWriter(initialBufSize)
		if _, err := e.encodeValue(kw, key, depth+1); err != nil {
			return withParent(err, "{key}")
		}
		vw := wire.NewWriter(initialBufSize)
		if _, err := e.encodeValue(vw, iter.Value().Interface(), depth+1); err != nil {
			return withParent(err, keySegment(key))
		}
		pairs = append(pairs, encodedPair{key: kw.Bytes(), value: vw.Bytes()})
	}

	sort.Slice(pairs, func(i, j int) bool {
		if c := bytes.Compare(pairs[i].key, pairs[j].key); c != 0 {
			return c < 0
		}
		return bytes.Compare(pairs[i].value, pairs[j].value) < 0
	})
	for _, p := range pairs {
		w.WriteBytes(p.key)
		w.WriteBytes(p.value)
	}
	return nil
}

func keySegment(key any) string {
	if s, ok := key.(string); ok {
		return s
	}
	return "{" + fmt.Sprint(key) + "}"
}

// encodeObject writes M t <type> (field value)* z. The argument tag is the
// simple type name.
func encodeObject(e *Encoder, w *wire.Writer, v any, depth int) (string, error) {
	obj := v.(hessian.Object)
	typeName := obj.HessianType()
	if err := checkShort(typeName, "type"); err != nil {
		return "", err
	}

	w.Byte('M')
	w.WriteShort('t', typeName)
	if state := obj.HessianState(); state != nil {
		for pair := state.Oldest(); pair != nil; pair = pair.Next() {
			if err := writeText(w, pair.Key); err != nil {
				return "", withParent(err, "{key}")
			}
			if _, err := e.encodeValue(w, pair.Value, depth+1); err != nil {
				return "", withParent(err, pair.Key)
			}
		}
	}
	w.Byte('z')
	return protocol.SimpleName(typeName), nil
}

// encodeRemote writes r t <type> followed by the URL as text.
func encodeRemote(_ *Encoder, w *wire.Writer, v any, _ int) (string, error) {
	r := v.(hessian.Remote)
	typeName := r.RemoteType()
	if err := checkShort(typeName, "type"); err != nil {
		return "", err
	}
	w.Byte('r')
	w.WriteShort('t', typeName)
	if err := writeText(w, r.RemoteURL()); err != nil {
		return "", withParent(err, "url")
	}
	return "", nil
}
