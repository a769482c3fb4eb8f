package compiler

import (
	"fmt"
	"reflect"

	"github.com/arenadata/avro/schema"
)

// registerNamed applies §3's resolved open question to a freshly compiled
// named type that carries no internal forward references (enum, fixed):
// an identical redefinition is accepted and collapsed to the first
// registration; a conflicting one is rejected with BadSchema. Record uses
// its own variant of this check in record.go, since a record placeholder
// must be registered before its body exists.
func (cs *compileState) registerNamed(name schema.Name, node *schema.Node) (*schema.Node, error) {
	prior, ok := cs.symbols.Lookup(name)
	if !ok {
		cs.symbols.Put(name, node)
		return node, nil
	}
	if reflect.DeepEqual(prior, node) {
		return prior, nil
	}
	return nil, &BadSchemaError{Reason: fmt.Sprintf("conflicting definitions for %q", name.String())}
}

// compileEnum compiles an {"type": "enum", "symbols": [...]} definition.
func (cs *compileState) compileEnum(namespace string, o object) (*schema.Node, error) {
	name, err := resolveName(o, namespace)
	if err != nil {
		return nil, err
	}

	doc, _, err := getOptionalString(o, "doc")
	if err != nil {
		return nil, err
	}
	doc = unescapeDoc(doc)

	symbolsRaw, err := getArray(o, "symbols")
	if err != nil {
		return nil, err
	}
	symbols, ok := stringSlice(symbolsRaw)
	if !ok {
		return nil, &BadSymbolError{Value: symbolsRaw}
	}

	node := schema.NewEnum(name, symbols, doc)
	node.SetLogical(compileLogicalType(o))
	return cs.registerNamed(name, node)
}

// compileFixed compiles an {"type": "fixed", "size": N} definition.
func (cs *compileState) compileFixed(namespace string, o object) (*schema.Node, error) {
	name, err := resolveName(o, namespace)
	if err != nil {
		return nil, err
	}

	doc, _, err := getOptionalString(o, "doc")
	if err != nil {
		return nil, err
	}
	doc = unescapeDoc(doc)

	sizeF, err := getFloat(o, "size")
	if err != nil {
		return nil, err
	}
	size := int(sizeF)
	if size <= 0 {
		return nil, &BadSizeError{Size: size}
	}

	node := schema.NewFixed(name, size, doc)
	node.SetLogical(compileLogicalType(o))
	return cs.registerNamed(name, node)
}
