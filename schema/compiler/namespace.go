package compiler

import (
	"strings"

	"github.com/arenadata/avro/schema"
)

// compileState is the per-invocation symbol table and dispatch driver. It
// is the counterpart of gogen-avro's own parser.Namespace, scoped to a
// single document: one compileState compiles exactly one schema JSON
// document, so within-document forward/self references are always
// resolvable by the time the root ValidSchema is built (see DESIGN.md's
// note on why this repo does not need gogen-avro's second
// resolver.ResolveDefinition pass).
type compileState struct {
	symbols *schema.SymbolTable
}

func newCompileState() *compileState {
	return &compileState{symbols: schema.NewSymbolTable()}
}

// unescapeDoc reverses only `\"` sequences in a doc string, per §6: the
// JSON layer (goccy/go-json) has already performed every other escape
// during tokenization, so this only matters for a doc string that itself
// contained a literal `\"` two-character sequence surviving JSON decode
// (i.e. the source JSON spelled it `\\\"`).
func unescapeDoc(doc string) string {
	return strings.ReplaceAll(doc, `\"`, `"`)
}

// resolveName computes a named type's fully-qualified Name from its JSON
// definition object and the enclosing namespace, per §4.2's Name
// Resolution rule: an explicit "namespace" field overrides the enclosing
// namespace — including an explicit empty string, which clears it rather
// than falling back — and a dotted "name" overrides both.
func resolveName(o object, enclosing string) (schema.Name, error) {
	name, err := getString(o, "name")
	if err != nil {
		return schema.Name{}, err
	}
	if nsVal, ok := o.get("namespace"); ok {
		ns, ok := nsVal.(string)
		if !ok {
			return schema.Name{}, &TypeMismatchError{Field: "namespace", Expected: "string", Got: nsVal}
		}
		enclosing = ns
	}
	return schema.ParseName(enclosing, name), nil
}
