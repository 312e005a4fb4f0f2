package encoder

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/wippyai/hessian/encoder/internal/kind"
	"github.com/wippyai/hessian/encoder/internal/wire"
	"github.com/wippyai/hessian/errors"
)

const (
	maxShort       = wire.MaxChunk
	initialBufSize = 64
)

// Encoder writes Go values in the Hessian 1.0.2 wire format. It holds no
// per-call state and is safe for concurrent use.
type Encoder struct {
	logger   *zap.Logger
	maxDepth int
}

// NewEncoder creates an encoder backed by the shared dispatch table.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{logger: Logger()}
	for _, opt := range opts {
		opt(e)
	}
	if ce := e.logger.Check(zap.DebugLevel, "encoder ready"); ce != nil {
		ce.Write(
			zap.Int("rules", registry.Len()),
			zap.Strings("dispatch_order", DispatchOrder()),
			zap.Int("max_depth", e.maxDepth))
	}
	return e
}

var defaultEncoder = &Encoder{}

// Encode encodes v with a default encoder.
func Encode(v any) ([]byte, error) {
	return defaultEncoder.Encode(v)
}

// Encode returns the full wire encoding of v. On failure no bytes are
// returned.
func (e *Encoder) Encode(v any) ([]byte, error) {
	_, data, err := e.EncodeArg(v)
	return data, err
}

// EncodeArg encodes v and also returns its argument tag, the short type
// name used for call overload naming ("int", "string", the simple name of
// an object type, ...).
func (e *Encoder) EncodeArg(v any) (string, []byte, error) {
	w := wire.NewWriter(initialBufSize)
	tag, err := e.encodeValue(w, v, 0)
	if err != nil {
		e.log().Debug("encode failed",
			zap.String("go_type", kind.TypeName(v)),
			zap.Error(err))
		return "", nil, err
	}
	return tag, w.Bytes(), nil
}

func (e *Encoder) log() *zap.Logger {
	if e.logger == nil {
		return Logger()
	}
	return e.logger
}

// encodeValue dispatches v to the first matching rule. Pointers nothing
// else accepts are dereferenced and retried.
func (e *Encoder) encodeValue(w *wire.Writer, v any, depth int) (string, error) {
	if e.maxDepth > 0 && depth > e.maxDepth {
		return "", errors.New(errors.PhaseEncode, errors.KindOverflow).
			GoType(kind.TypeName(v)).
			Value(depth).
			Detail("nesting depth exceeds %d", e.maxDepth).
			Build()
	}

	entry, ok := registry.Lookup(v)
	if !ok {
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Pointer && !rv.IsNil() {
			return e.encodeValue(w, rv.Elem().Interface(), depth)
		}
		return "", errors.UnsupportedType(nil, kind.TypeName(v))
	}

	tag, err := entry.Handler(e, w, v, depth)
	if err != nil {
		return "", err
	}
	if tag == "" {
		tag = entry.Kind.Tag()
	}
	return tag, nil
}
