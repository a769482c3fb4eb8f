package schema

// DatumKind is the tag of a materialized default value.
type DatumKind int

const (
	DatumEmpty DatumKind = iota // distinguished "no default supplied" marker
	DatumNull
	DatumBool
	DatumInt
	DatumLong
	DatumFloat
	DatumDouble
	DatumString
	DatumBytes
	DatumRecord
	DatumEnum
	DatumArray
	DatumMap
	DatumUnion
	DatumFixed
)

// MapEntry is one key-value pair of a materialized map default, kept in
// the JSON document's declaration order (§4.2).
type MapEntry struct {
	Key   string
	Value Datum
}

// Datum is the generic value used to represent a compiled field default.
// It is a closed sum type switched on Kind; only the fields relevant to
// Kind are meaningful.
type Datum struct {
	Kind DatumKind
	Node *Node

	Bool   bool
	Int    int32
	Long   int64
	Float  float32
	Double float64
	Str    string
	Bytes  []byte

	Fields []Datum // Record, parallel to Node.FieldNames()
	Symbol string  // Enum
	Items  []Datum // Array
	Pairs  []MapEntry // Map

	BranchIndex int    // Union
	Inner       *Datum // Union
}

func Empty() Datum                { return Datum{Kind: DatumEmpty} }
func NewNull() Datum              { return Datum{Kind: DatumNull} }
func NewBool(v bool) Datum        { return Datum{Kind: DatumBool, Bool: v} }
func NewInt(v int32) Datum        { return Datum{Kind: DatumInt, Int: v} }
func NewLong(v int64) Datum       { return Datum{Kind: DatumLong, Long: v} }
func NewFloat(v float32) Datum    { return Datum{Kind: DatumFloat, Float: v} }
func NewDouble(v float64) Datum   { return Datum{Kind: DatumDouble, Double: v} }
func NewString(v string) Datum    { return Datum{Kind: DatumString, Str: v} }
func NewBytes(v []byte) Datum     { return Datum{Kind: DatumBytes, Bytes: v} }
func NewFixedDatum(n *Node, v []byte) Datum {
	return Datum{Kind: DatumFixed, Node: n, Bytes: v}
}
func NewEnumDatum(n *Node, symbol string) Datum {
	return Datum{Kind: DatumEnum, Node: n, Symbol: symbol}
}
func NewRecordDatum(n *Node, fields []Datum) Datum {
	return Datum{Kind: DatumRecord, Node: n, Fields: fields}
}
func NewArrayDatum(n *Node, items []Datum) Datum {
	return Datum{Kind: DatumArray, Node: n, Items: items}
}
func NewMapDatum(n *Node, pairs []MapEntry) Datum {
	return Datum{Kind: DatumMap, Node: n, Pairs: pairs}
}
func NewUnionDatum(n *Node, branchIndex int, inner Datum) Datum {
	return Datum{Kind: DatumUnion, Node: n, BranchIndex: branchIndex, Inner: &inner}
}

// IsAbsent reports whether d represents "no default was supplied", as
// opposed to an explicit JSON null default (DatumNull).
func (d Datum) IsAbsent() bool { return d.Kind == DatumEmpty }
