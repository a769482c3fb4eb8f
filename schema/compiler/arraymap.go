package compiler

import "github.com/arenadata/avro/schema"

// compileArrayType compiles an {"type": "array", "items": ...} definition.
func (cs *compileState) compileArrayType(namespace string, o object) (*schema.Node, error) {
	itemsVal, ok := o.get("items")
	if !ok {
		return nil, &MissingFieldError{Field: "items"}
	}
	item, err := cs.compileType(itemsVal, namespace)
	if err != nil {
		return nil, err
	}
	return schema.NewArray(item), nil
}

// compileMapType compiles an {"type": "map", "values": ...} definition. The
// key type is always string and is not itself compiled (§4.2).
func (cs *compileState) compileMapType(namespace string, o object) (*schema.Node, error) {
	valuesVal, ok := o.get("values")
	if !ok {
		return nil, &MissingFieldError{Field: "values"}
	}
	value, err := cs.compileType(valuesVal, namespace)
	if err != nil {
		return nil, err
	}
	return schema.NewMap(value), nil
}
