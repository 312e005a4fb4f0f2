package jsonvalue

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/wippyai/hessian"
	"github.com/wippyai/hessian/errors"
	"github.com/wippyai/hessian/protocol"
)

type tag uint8

const (
	tagLong tag = iota + 1
	tagDouble
	tagDate
	tagBinary
	tagBytes
	tagTuple
	tagRemote
	tagObject
)

var tags = map[string]tag{
	"$long":   tagLong,
	"$double": tagDouble,
	"$date":   tagDate,
	"$binary": tagBinary,
	"$bytes":  tagBytes,
	"$tuple":  tagTuple,
	"$remote": tagRemote,
	"$object": tagObject,
}

func convert(t tag, raw any, path []string) (any, error) {
	switch t {
	case tagLong:
		switch n := raw.(type) {
		case int32:
			return int64(n), nil
		case int64:
			return n, nil
		}
		return nil, invalid(path, "expected an integer, got %T", raw)

	case tagDouble:
		switch n := raw.(type) {
		case int32:
			return float64(n), nil
		case int64:
			return float64(n), nil
		case float64:
			return n, nil
		}
		return nil, invalid(path, "expected a number, got %T", raw)

	case tagDate:
		s, ok := raw.(string)
		if !ok {
			return nil, invalid(path, "expected an RFC 3339 string, got %T", raw)
		}
		ts, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return nil, wrap(path, err, "parse date")
		}
		return ts, nil

	case tagBinary:
		s, ok := raw.(string)
		if !ok {
			return nil, invalid(path, "expected a base64 string, got %T", raw)
		}
		data, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, wrap(path, err, "decode base64")
		}
		return protocol.Binary{Value: data}, nil

	case tagBytes:
		s, ok := raw.(string)
		if !ok {
			return nil, invalid(path, "expected a string, got %T", raw)
		}
		return []byte(s), nil

	case tagTuple:
		items, ok := raw.([]any)
		if !ok {
			return nil, invalid(path, "expected an array, got %T", raw)
		}
		return protocol.Tuple(items), nil

	case tagRemote:
		m, ok := raw.(*hessian.Map)
		if !ok {
			return nil, invalid(path, "expected an object, got %T", raw)
		}
		typeName, err := stringField(m, "type", path)
		if err != nil {
			return nil, err
		}
		url, err := stringField(m, "url", path)
		if err != nil {
			return nil, err
		}
		return protocol.Remote{Type: typeName, URL: url}, nil

	case tagObject:
		m, ok := raw.(*hessian.Map)
		if !ok {
			return nil, invalid(path, "expected an object, got %T", raw)
		}
		typeName, err := stringField(m, "type", path)
		if err != nil {
			return nil, err
		}
		obj := protocol.NewObject(typeName)
		fields, present := m.Get("fields")
		if !present || fields == nil {
			return obj, nil
		}
		fm, ok := fields.(*hessian.Map)
		if !ok {
			return nil, invalid(child(path, "fields"), "expected an object, got %T", fields)
		}
		for pair := fm.Oldest(); pair != nil; pair = pair.Next() {
			obj.Set(pair.Key.(string), pair.Value)
		}
		return obj, nil
	}
	return nil, invalid(path, "unknown tag")
}

func stringField(m *hessian.Map, name string, path []string) (string, error) {
	v, _ := m.Get(name)
	s, ok := v.(string)
	if !ok {
		return "", invalid(child(path, name), "expected a string, got %T", v)
	}
	return s, nil
}

func invalid(path []string, format string, args ...any) *errors.Error {
	return errors.InvalidData(errors.PhaseParse, path, fmt.Sprintf(format, args...))
}

func wrap(path []string, err error, detail string) *errors.Error {
	return errors.New(errors.PhaseParse, errors.KindInvalidData).
		Path(path...).
		Cause(err).
		Detail(detail).
		Build()
}
