package compiler

import (
	"fmt"
	"reflect"

	"github.com/arenadata/avro/schema"
)

// compileRecord compiles a "record" or "error" object definition. A
// placeholder is registered under the record's fully-qualified name
// *before* its fields are compiled, so a field typed with the record's own
// name (directly, or through a union) resolves to a symbolic reference to
// this very record — the mechanism behind S4/invariant 6's self-reference
// case.
func (cs *compileState) compileRecord(namespace string, o object) (*schema.Node, error) {
	name, err := resolveName(o, namespace)
	if err != nil {
		return nil, err
	}

	doc, _, err := getOptionalString(o, "doc")
	if err != nil {
		return nil, err
	}
	doc = unescapeDoc(doc)

	fieldsRaw, err := getArray(o, "fields")
	if err != nil {
		return nil, err
	}

	prior, hadPrior := cs.symbols.Lookup(name)
	placeholder := schema.NewRecordPlaceholder(name)
	cs.symbols.Put(name, placeholder)

	fieldNames := make([]string, 0, len(fieldsRaw))
	leaves := make([]*schema.Node, 0, len(fieldsRaw))
	defaults := make([]schema.Datum, 0, len(fieldsRaw))
	fieldDocs := make([]string, 0, len(fieldsRaw))

	for _, raw := range fieldsRaw {
		fo, ok := raw.(object)
		if !ok {
			return nil, &TypeMismatchError{Field: "fields[]", Expected: "object", Got: raw}
		}

		fieldName, err := getString(fo, "name")
		if err != nil {
			return nil, err
		}

		typeVal, ok := fo.get("type")
		if !ok {
			return nil, &MissingFieldError{Field: "type"}
		}
		fieldType, err := cs.compileType(typeVal, name.Namespace)
		if err != nil {
			return nil, err
		}

		fieldDoc, _, err := getOptionalString(fo, "doc")
		if err != nil {
			return nil, err
		}
		fieldDoc = unescapeDoc(fieldDoc)

		def := schema.Empty()
		if defRaw, ok := fo.get("default"); ok {
			def, err = materializeDefault(fieldType, defRaw)
			if err != nil {
				return nil, err
			}
		}

		fieldNames = append(fieldNames, fieldName)
		leaves = append(leaves, fieldType)
		defaults = append(defaults, def)
		fieldDocs = append(fieldDocs, fieldDoc)
	}

	placeholder.FillRecord(fieldNames, leaves, defaults, fieldDocs, doc)
	placeholder.SetLogical(compileLogicalType(o))

	if !hadPrior {
		return placeholder, nil
	}
	if reflect.DeepEqual(prior, placeholder) {
		cs.symbols.Put(name, prior)
		return prior, nil
	}
	cs.symbols.Put(name, prior)
	return nil, &BadSchemaError{Reason: fmt.Sprintf("conflicting definitions for %q", name.String())}
}
