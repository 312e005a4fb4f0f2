package jsonvalue

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/wippyai/hessian"
	"github.com/wippyai/hessian/errors"
)

// Parse reads exactly one JSON value from data.
func Parse(data []byte) (any, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads exactly one JSON value from r. Trailing data other than
// whitespace is an error.
func Decode(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	p := &parser{dec: dec}
	v, err := p.value(nil)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.InvalidData(errors.PhaseParse, nil, "unexpected data after value")
	}
	return v, nil
}

type parser struct {
	dec *json.Decoder
}

func (p *parser) token(path []string) (json.Token, error) {
	tok, err := p.dec.Token()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, wrap(path, err, "read json")
	}
	return tok, nil
}

func (p *parser) value(path []string) (any, error) {
	tok, err := p.token(path)
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case nil, bool, string:
		return t, nil
	case json.Number:
		return number(t, path)
	case json.Delim:
		switch t {
		case '[':
			return p.array(path)
		case '{':
			return p.object(path)
		}
	}
	return nil, errors.InvalidData(errors.PhaseParse, path, fmt.Sprintf("unexpected token %v", tok))
}

// number keeps integers integral: int32 when it fits, int64 otherwise.
// An integer literal outside the int64 range is an error rather than a
// lossy double; write it with a fraction or exponent to get a double.
func number(n json.Number, path []string) (any, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, wrap(path, err, "integer out of int64 range")
		}
		if i >= math.MinInt32 && i <= math.MaxInt32 {
			return int32(i), nil
		}
		return i, nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, wrap(path, err, "parse number")
	}
	return f, nil
}

func (p *parser) array(path []string) ([]any, error) {
	out := []any{}
	for p.dec.More() {
		v, err := p.value(child(path, "["+strconv.Itoa(len(out))+"]"))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if _, err := p.token(path); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *parser) object(path []string) (any, error) {
	m := hessian.NewMap()
	first := true
	for p.dec.More() {
		tok, err := p.token(path)
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)

		if t, ok := tags[key]; ok && first {
			keyPath := child(path, key)
			raw, err := p.value(keyPath)
			if err != nil {
				return nil, err
			}
			if !p.dec.More() {
				if _, err := p.token(path); err != nil {
					return nil, err
				}
				return convert(t, raw, keyPath)
			}
			m.Set(key, raw)
			first = false
			continue
		}
		first = false

		v, err := p.value(child(path, key))
		if err != nil {
			return nil, err
		}
		m.Set(key, v)
	}
	if _, err := p.token(path); err != nil {
		return nil, err
	}
	return m, nil
}

func child(path []string, segment string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, segment)
}
