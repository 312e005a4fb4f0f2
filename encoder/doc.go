// Package encoder writes Go values in the Hessian 1.0.2 wire format.
//
// # Dispatch
//
// Every value is tested against an ordered rule table and encoded by the
// first rule whose predicate accepts it. Rules declare their ancestors, and
// the table is sorted so that a rule always comes before its ancestors:
//
//	bool ⊂ int ⊂ long        (a bool is the integer 0 or 1)
//	ascii ⊂ list             (a []byte is a list of bytes)
//
// Unrelated rules keep their registration order. The resulting order is
// available from DispatchOrder and is fixed for the life of the process.
//
// # Wire Layout
//
//	Value              Bytes
//	─────────────────────────────────────────────────────────
//	nil                N
//	bool               T | F
//	int                I b32
//	long               L b64
//	double             D b64
//	time.Time          d b64                 (ms since epoch)
//	string             (s b16 utf8)* S b16 utf8
//	[]byte             (s b16 ascii)* S b16 ascii
//	Binary             (b b16 data)* B b16 data
//	slice              V l b32(-1) value* z
//	array, Tuple       V l b32(n) value* z
//	map                M (key value)* z
//	Object             M t b16 type (field value)* z
//	Remote             r t b16 type string
//	Invocation         c major 0 (H b16 name value)* m b16 method value* z
//
// Chunk lengths count code points for text and bytes for everything else.
// A chunk never exceeds 65535 units and the final chunk is always present,
// possibly empty.
//
// # Errors
//
// Failures are *errors.Error values carrying the path to the offending
// value, for example args[1].items[3]. Use errors.Is with ErrUnsupportedType,
// ErrStringEncoding, ErrHeaderKeyType, ErrInvalidUTF8 or ErrOverflow. No
// bytes are returned on failure.
//
// # Concurrency
//
// The dispatch table is built during package initialization and never
// modified. An Encoder holds only configuration, so one instance may be
// shared across goroutines.
package encoder
