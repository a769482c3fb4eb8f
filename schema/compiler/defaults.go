package compiler

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/arenadata/avro/schema"
)

// materializeDefault converts a field's raw JSON "default" value into a
// Datum shaped by node's kind, per §4.2's default-materialization table. A
// union default is always checked against the union's first branch
// (invariant 9); everything else dispatches on the node's own kind, after
// following any Symbolic indirection.
func materializeDefault(node *schema.Node, jsonVal interface{}) (schema.Datum, error) {
	target := node.Deref()

	if target.Kind() == schema.Union {
		leaves := target.Leaves()
		if len(leaves) == 0 {
			return schema.Datum{}, &BadDefaultError{Reason: "union has no branches"}
		}
		inner, err := materializeDefault(leaves[0], jsonVal)
		if err != nil {
			return schema.Datum{}, err
		}
		return schema.NewUnionDatum(target, 0, inner), nil
	}

	switch target.Kind() {
	case schema.Null:
		if jsonVal != nil {
			return schema.Datum{}, &BadDefaultError{Reason: "expected null default"}
		}
		return schema.NewNull(), nil

	case schema.Bool:
		v, ok := jsonVal.(bool)
		if !ok {
			return schema.Datum{}, &BadDefaultError{Reason: "expected boolean default"}
		}
		return schema.NewBool(v), nil

	case schema.Int:
		v, ok := jsonVal.(float64)
		if !ok {
			return schema.Datum{}, &BadDefaultError{Reason: "expected numeric default for int"}
		}
		return schema.NewInt(int32(v)), nil

	case schema.Long:
		v, ok := jsonVal.(float64)
		if !ok {
			return schema.Datum{}, &BadDefaultError{Reason: "expected numeric default for long"}
		}
		return schema.NewLong(int64(v)), nil

	case schema.Float:
		v, ok := jsonVal.(float64)
		if !ok {
			return schema.Datum{}, &BadDefaultError{Reason: "expected numeric default for float"}
		}
		return schema.NewFloat(float32(v)), nil

	case schema.Double:
		v, ok := jsonVal.(float64)
		if !ok {
			return schema.Datum{}, &BadDefaultError{Reason: "expected numeric default for double"}
		}
		return schema.NewDouble(v), nil

	case schema.String:
		v, ok := jsonVal.(string)
		if !ok {
			return schema.Datum{}, &BadDefaultError{Reason: "expected string default"}
		}
		if target.Logical().Type == schema.LogicalUUID {
			if _, err := uuid.Parse(v); err != nil {
				return schema.Datum{}, &BadDefaultError{Reason: fmt.Sprintf("invalid uuid default %q: %v", v, err)}
			}
		}
		return schema.NewString(v), nil

	case schema.Bytes:
		v, ok := jsonVal.(string)
		if !ok {
			return schema.Datum{}, &BadDefaultError{Reason: "expected string default for bytes"}
		}
		b, err := latin1Bytes(v)
		if err != nil {
			return schema.Datum{}, err
		}
		return schema.NewBytes(b), nil

	case schema.Fixed:
		v, ok := jsonVal.(string)
		if !ok {
			return schema.Datum{}, &BadDefaultError{Reason: "expected string default for fixed"}
		}
		b, err := latin1Bytes(v)
		if err != nil {
			return schema.Datum{}, err
		}
		if len(b) != target.Size() {
			return schema.Datum{}, &BadDefaultError{Reason: fmt.Sprintf("fixed default has %d bytes, want %d", len(b), target.Size())}
		}
		return schema.NewFixedDatum(target, b), nil

	case schema.Enum:
		v, ok := jsonVal.(string)
		if !ok {
			return schema.Datum{}, &BadDefaultError{Reason: "expected string default for enum"}
		}
		return schema.NewEnumDatum(target, v), nil

	case schema.Array:
		items, ok := jsonVal.([]interface{})
		if !ok {
			return schema.Datum{}, &BadDefaultError{Reason: "expected array default"}
		}
		itemType := target.Leaves()[0]
		out := make([]schema.Datum, 0, len(items))
		for _, it := range items {
			d, err := materializeDefault(itemType, it)
			if err != nil {
				return schema.Datum{}, err
			}
			out = append(out, d)
		}
		return schema.NewArrayDatum(target, out), nil

	case schema.Map:
		obj, ok := jsonVal.(object)
		if !ok {
			return schema.Datum{}, &BadDefaultError{Reason: "expected object default for map"}
		}
		valueType := target.Leaves()[0]
		pairs := make([]schema.MapEntry, 0, len(obj))
		for _, pair := range obj {
			d, err := materializeDefault(valueType, pair.value)
			if err != nil {
				return schema.Datum{}, err
			}
			pairs = append(pairs, schema.MapEntry{Key: pair.key, Value: d})
		}
		return schema.NewMapDatum(target, pairs), nil

	case schema.Record:
		obj, ok := jsonVal.(object)
		if !ok {
			return schema.Datum{}, &BadDefaultError{Reason: "expected object default for record"}
		}
		fieldNames := target.FieldNames()
		leaves := target.Leaves()
		fields := make([]schema.Datum, len(fieldNames))
		for i, fname := range fieldNames {
			val, ok := obj.get(fname)
			if !ok {
				return schema.Datum{}, &MissingDefaultError{Field: fname}
			}
			d, err := materializeDefault(leaves[i], val)
			if err != nil {
				return schema.Datum{}, err
			}
			fields[i] = d
		}
		return schema.NewRecordDatum(target, fields), nil

	default:
		return schema.Datum{}, &BadDefaultError{Reason: fmt.Sprintf("unsupported default kind %s", target.Kind())}
	}
}

// latin1Bytes decodes an Avro JSON bytes/fixed default: a string whose
// runes each give one raw byte, the rune's low 8 bits, so runes in
// [0x00, 0xFF] map to themselves, per the Avro specification's encoding of
// binary defaults as JSON strings. The returned error is always nil.
func latin1Bytes(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		out = append(out, byte(r))
	}
	return out, nil
}
