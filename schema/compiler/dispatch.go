package compiler

import (
	"github.com/arenadata/avro/schema"
)

// compileType dispatches on the JSON form of a type at any position,
// per §4.2: a string (primitive or named reference), an array (union), or
// an object (complex type definition).
func (cs *compileState) compileType(val interface{}, namespace string) (*schema.Node, error) {
	switch v := val.(type) {
	case string:
		if debugging {
			debugf("dispatch: %q is a string type in namespace %q", v, namespace)
		}
		return cs.resolveTypeName(namespace, v)
	case []interface{}:
		if debugging {
			debugf("dispatch: %d-branch union in namespace %q", len(v), namespace)
		}
		return cs.compileUnion(namespace, v)
	case object:
		if debugging {
			debugf("dispatch: object type in namespace %q", namespace)
		}
		return cs.compileComplex(namespace, v)
	default:
		return nil, &BadSchemaError{Reason: "type must be a string, array, or object"}
	}
}

// resolveTypeName handles the string dispatch form: either a primitive
// type name or a (possibly short) reference to a previously defined named
// type, resolved against the enclosing namespace and looked up in the
// symbol table.
func (cs *compileState) resolveTypeName(namespace, name string) (*schema.Node, error) {
	if kind, ok := schema.PrimitiveKind(name); ok {
		return schema.NewPrimitive(kind), nil
	}
	full := schema.ParseName(namespace, name)
	target, ok := cs.symbols.Lookup(full)
	if !ok {
		return nil, &UnknownTypeError{Name: name}
	}
	return schema.NewSymbolic(full, target), nil
}

// compileComplex handles the object dispatch form: a complex type
// definition, keyed on its "type" field.
//
// Named types apply their own logicalType overlay before registering
// themselves (see compileRecord/compileEnum/compileFixed): the overlay is
// part of a named type's identity for duplicate-definition comparison, and
// must be attached before — not after — that comparison runs, or an
// identical redefinition that both carry the same logicalType would
// compare unequal against the first (unannotated-at-comparison-time)
// registration. Array, map and primitive/reference dispatch have no
// registration step, so applying the overlay here after the fact is safe
// for them.
func (cs *compileState) compileComplex(namespace string, o object) (*schema.Node, error) {
	typeStr, err := getString(o, "type")
	if err != nil {
		return nil, err
	}
	if debugging {
		debugf("compile dispatch: type=%q", typeStr)
	}

	switch typeStr {
	case "record", "error":
		return cs.compileRecord(namespace, o)
	case "enum":
		return cs.compileEnum(namespace, o)
	case "fixed":
		return cs.compileFixed(namespace, o)
	case "array":
		node, err := cs.compileArrayType(namespace, o)
		if err != nil {
			return nil, err
		}
		node.SetLogical(compileLogicalType(o))
		return node, nil
	case "map":
		node, err := cs.compileMapType(namespace, o)
		if err != nil {
			return nil, err
		}
		node.SetLogical(compileLogicalType(o))
		return node, nil
	default:
		// Not a special case: "type" names a primitive or a reference.
		node, err := cs.resolveTypeName(namespace, typeStr)
		if err != nil {
			return nil, err
		}
		node.SetLogical(compileLogicalType(o))
		return node, nil
	}
}
