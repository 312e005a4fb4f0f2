package kind

type Kind uint8

const (
	Value Kind = iota
	Null
	Bool
	Int
	Long
	Double
	Date
	String
	ASCII
	Binary
	List
	Tuple
	Map
	Object
	Remote
	Call
)

var kindNames = [...]string{
	Value:  "value",
	Null:   "null",
	Bool:   "bool",
	Int:    "int",
	Long:   "long",
	Double: "double",
	Date:   "date",
	String: "string",
	ASCII:  "ascii",
	Binary: "binary",
	List:   "list",
	Tuple:  "tuple",
	Map:    "map",
	Object: "object",
	Remote: "remote",
	Call:   "call",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Tag returns the overload naming tag. Object has no fixed tag: its
// handler supplies the object's simple type name.
func (k Kind) Tag() string {
	switch k {
	case ASCII:
		return "string"
	case Tuple:
		return "list"
	case Object, Value:
		return ""
	default:
		return k.String()
	}
}
