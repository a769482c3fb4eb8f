package schema

// Kind is the closed set of Avro schema node types.
type Kind int

const (
	Null Kind = iota
	Bool
	Int
	Long
	Float
	Double
	Bytes
	String
	Record
	Enum
	Array
	Map
	Union
	Fixed
	Symbolic
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Int:
		return "int"
	case Long:
		return "long"
	case Float:
		return "float"
	case Double:
		return "double"
	case Bytes:
		return "bytes"
	case String:
		return "string"
	case Record:
		return "record"
	case Enum:
		return "enum"
	case Array:
		return "array"
	case Map:
		return "map"
	case Union:
		return "union"
	case Fixed:
		return "fixed"
	case Symbolic:
		return "symbolic"
	default:
		return "unknown"
	}
}

// IsPrimitive reports whether k is one of the eight Avro primitive types.
func (k Kind) IsPrimitive() bool {
	switch k {
	case Null, Bool, Int, Long, Float, Double, Bytes, String:
		return true
	default:
		return false
	}
}

// IsNamed reports whether k carries identity via a Name (record, enum, fixed).
func (k Kind) IsNamed() bool {
	switch k {
	case Record, Enum, Fixed:
		return true
	default:
		return false
	}
}

// primitiveKindByName maps the eight Avro primitive type names to their Kind.
var primitiveKindByName = map[string]Kind{
	"null":    Null,
	"boolean": Bool,
	"int":     Int,
	"long":    Long,
	"float":   Float,
	"double":  Double,
	"bytes":   Bytes,
	"string":  String,
}

// PrimitiveKind looks up a JSON type name as a primitive Kind.
func PrimitiveKind(name string) (Kind, bool) {
	k, ok := primitiveKindByName[name]
	return k, ok
}
