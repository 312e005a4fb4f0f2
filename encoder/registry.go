package encoder

import (
	"math"
	"reflect"
	"time"

	"github.com/wippyai/hessian"
	"github.com/wippyai/hessian/encoder/internal/dispatch"
	"github.com/wippyai/hessian/encoder/internal/kind"
	"github.com/wippyai/hessian/encoder/internal/wire"
	"github.com/wippyai/hessian/protocol"
)

// handler writes one value and returns its argument tag, or "" for the
// kind's default tag.
type handler func(e *Encoder, w *wire.Writer, v any, depth int) (string, error)

type entry = dispatch.Entry[kind.Kind, handler]

// registry is built once at package initialization and read-only after.
var registry *dispatch.Table[kind.Kind, handler]

func init() {
	registry = dispatch.MustBuild(entries())
}

// entries declares every rule with its full ancestor set. Ancestor
// predicates accept everything their descendants accept: a bool is an int
// (0 or 1) and every int is a long; a []byte is a list of bytes. Unrelated
// kinds are tried in the order listed here, so nil pointers reach null and
// capability interfaces win over the underlying Go kind.
func entries() []entry {
	root := []kind.Kind{kind.Value}
	return []entry{
		{Kind: kind.Null, Ancestors: root, Match: isNull, Handler: encodeNull},
		{Kind: kind.Call, Ancestors: root, Match: isCall, Handler: encodeCall},
		{Kind: kind.Remote, Ancestors: root, Match: isRemote, Handler: encodeRemote},
		{Kind: kind.Object, Ancestors: root, Match: isObject, Handler: encodeObject},
		{Kind: kind.Binary, Ancestors: root, Match: isBinary, Handler: encodeBinary},
		{Kind: kind.Long, Ancestors: root, Match: isLong, Handler: encodeLong},
		{Kind: kind.Int, Ancestors: []kind.Kind{kind.Long, kind.Value}, Match: isInt, Handler: encodeInt},
		{Kind: kind.Bool, Ancestors: []kind.Kind{kind.Int, kind.Long, kind.Value}, Match: isBool, Handler: encodeBool},
		{Kind: kind.Double, Ancestors: root, Match: isDouble, Handler: encodeDouble},
		{Kind: kind.Date, Ancestors: root, Match: isDate, Handler: encodeDate},
		{Kind: kind.String, Ancestors: root, Match: isString, Handler: encodeString},
		{Kind: kind.Tuple, Ancestors: root, Match: isTuple, Handler: encodeTuple},
		{Kind: kind.Map, Ancestors: root, Match: isMap, Handler: encodeMap},
		{Kind: kind.List, Ancestors: root, Match: isList, Handler: encodeList},
		{Kind: kind.ASCII, Ancestors: []kind.Kind{kind.List, kind.Value}, Match: isASCII, Handler: encodeASCII},
	}
}

// DispatchOrder returns the rule names in the order values are tested.
func DispatchOrder() []string {
	order := registry.Order()
	names := make([]string, len(order))
	for i, k := range order {
		names[i] = k.String()
	}
	return names
}

func isNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// hasCapability reports whether v implements one of the root interfaces.
// Subtype predicates defer to the capability rules for such values.
func hasCapability(v any) bool {
	switch v.(type) {
	case hessian.Invocation, hessian.Remote, hessian.Object, hessian.BinaryValue:
		return true
	}
	return false
}

func isBool(v any) bool {
	return reflect.ValueOf(v).Kind() == reflect.Bool && !hasCapability(v)
}

func isInt(v any) bool {
	if hasCapability(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Uint8, reflect.Uint16:
		return true
	case reflect.Int:
		n := rv.Int()
		return n >= math.MinInt32 && n <= math.MaxInt32
	}
	return false
}

func isLong(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func isDouble(v any) bool {
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Float32 || k == reflect.Float64
}

func isDate(v any) bool {
	_, ok := v.(time.Time)
	return ok
}

func isString(v any) bool {
	return reflect.ValueOf(v).Kind() == reflect.String
}

func isASCII(v any) bool {
	if hasCapability(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8
}

func isBinary(v any) bool {
	_, ok := v.(hessian.BinaryValue)
	return ok
}

func isList(v any) bool {
	return reflect.ValueOf(v).Kind() == reflect.Slice
}

func isTuple(v any) bool {
	if _, ok := v.(protocol.Tuple); ok {
		return true
	}
	return reflect.ValueOf(v).Kind() == reflect.Array
}

func isMap(v any) bool {
	switch v.(type) {
	case *hessian.Map, *hessian.Fields:
		return true
	}
	return reflect.ValueOf(v).Kind() == reflect.Map
}

func isObject(v any) bool {
	_, ok := v.(hessian.Object)
	return ok
}

func isRemote(v any) bool {
	_, ok := v.(hessian.Remote)
	return ok
}

func isCall(v any) bool {
	_, ok := v.(hessian.Invocation)
	return ok
}
