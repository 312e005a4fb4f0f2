package encoder

import (
	"reflect"
	"strings"

	"github.com/wippyai/hessian"
	"github.com/wippyai/hessian/encoder/internal/kind"
	"github.com/wippyai/hessian/encoder/internal/wire"
	"github.com/wippyai/hessian/errors"
)

// encodeCall writes a call frame:
//
//	c <major> 0 (H <name> <value>)* m <method> <args>* z
//
// With overload naming on, every argument's tag is appended to the method
// name before it is written, so the arguments are encoded first into a
// separate buffer.
func encodeCall(e *Encoder, w *wire.Writer, v any, depth int) (string, error) {
	call := v.(hessian.Invocation)

	w.Byte('c')
	w.Byte(call.Version())
	w.Byte(0)

	if headers := call.Headers(); headers != nil {
		for pair := headers.Oldest(); pair != nil; pair = pair.Next() {
			if !isString(pair.Key) {
				return "", errors.HeaderKeyType(kind.TypeName(pair.Key), pair.Key)
			}
			name := reflect.ValueOf(pair.Key).String()
			if err := checkShort(name, "headers"); err != nil {
				return "", err
			}
			w.WriteShort('H', name)
			if _, err := e.encodeValue(w, pair.Value, depth+1); err != nil {
				return "", withParent(withParent(err, name), "headers")
			}
		}
	}

	method := call.Method()
	args := wire.NewWriter(initialBufSize)
	if call.Overload() {
		var sb strings.Builder
		sb.WriteString(method)
		for i, arg := range call.Args() {
			tag, err := e.encodeValue(args, arg, depth+1)
			if err != nil {
				return "", withParent(withParent(err, index(i)), "args")
			}
			sb.WriteByte('_')
			sb.WriteString(tag)
		}
		method = sb.String()
	} else {
		for i, arg := range call.Args() {
			if _, err := e.encodeValue(args, arg, depth+1); err != nil {
				return "", withParent(withParent(err, index(i)), "args")
			}
		}
	}

	if err := checkShort(method, "method"); err != nil {
		return "", err
	}
	w.WriteShort('m', method)
	w.WriteBytes(args.Bytes())
	w.Byte('z')
	return "", nil
}
