// Package jsonvalue reads a JSON document into values the Hessian encoder
// accepts.
//
// Plain JSON maps directly:
//
//	null          nil
//	true, false   bool
//	12            int32, or int64 outside the 32-bit range
//	1.5, 1e3      float64
//	"text"        string
//	[...]         []any
//	{...}         *hessian.Map, keys in document order
//
// Values JSON cannot express are written as single-key objects whose key
// starts with '$':
//
//	{"$long": 1}                                 int64
//	{"$double": 2}                               float64
//	{"$date": "2024-01-02T03:04:05Z"}            time.Time (RFC 3339)
//	{"$binary": "AAEC"}                          protocol.Binary (base64)
//	{"$bytes": "abc"}                            []byte, ASCII string
//	{"$tuple": [1, 2]}                           protocol.Tuple
//	{"$remote": {"type": "T", "url": "U"}}       protocol.Remote
//	{"$object": {"type": "T", "fields": {...}}}  *protocol.TypedObject
//
// Any other key, or a '$' key alongside other keys, is an ordinary map
// entry.
package jsonvalue
