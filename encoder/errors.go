package encoder

import (
	"strconv"

	"github.com/wippyai/hessian/errors"
)

// Sentinels for errors.Is. They match on phase and kind only.
var (
	ErrUnsupportedType = &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindUnsupportedType}
	ErrStringEncoding  = &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindStringEncoding}
	ErrHeaderKeyType   = &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindHeaderKeyType}
	ErrInvalidUTF8     = &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindInvalidUTF8}
	ErrOverflow        = &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindOverflow}
)

// withParent prefixes the path of a structured error with segment.
func withParent(err error, segment string) error {
	if e, ok := err.(*errors.Error); ok {
		return e.WithParent(segment)
	}
	return err
}

func index(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

// checkShort fails when s does not fit a 16-bit length field.
func checkShort(s, what string) error {
	if len(s) > maxShort {
		return errors.New(errors.PhaseEncode, errors.KindOverflow).
			Path(what).
			WireType("string").
			Value(len(s)).
			Detail("length %d exceeds %d", len(s), maxShort).
			Build()
	}
	return nil
}
