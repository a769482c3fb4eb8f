// Package compiler compiles Avro JSON schema documents into a validated
// schema.ValidSchema graph, resolving named-type references (including
// self-references) within a single document and materializing field
// defaults into schema.Datum values.
package compiler

import (
	"io"
	"os"
	"strings"

	"github.com/arenadata/avro/schema"
)

// FromReader compiles a single Avro JSON schema document read from r.
func FromReader(r io.Reader) (*schema.ValidSchema, error) {
	doc, err := parseDocument(r)
	if err != nil {
		return nil, err
	}
	cs := newCompileState()
	root, err := cs.compileType(doc, "")
	if err != nil {
		return nil, err
	}
	return schema.NewValidSchema(root)
}

// FromBytes compiles a schema document held in memory.
func FromBytes(b []byte) (*schema.ValidSchema, error) {
	return FromReader(strings.NewReader(string(b)))
}

// FromString compiles a schema document given as a string.
func FromString(s string) (*schema.ValidSchema, error) {
	return FromReader(strings.NewReader(s))
}

// FromFile opens path and compiles its contents as a schema document.
func FromFile(path string) (*schema.ValidSchema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return FromReader(f)
}

// Compile is the non-throwing variant used where a caller wants to report a
// compile failure as a message rather than propagate an error value, e.g.
// from a command-line tool. It returns the compiled schema, whether
// compilation succeeded, and, on failure, a human-readable reason.
func Compile(r io.Reader) (*schema.ValidSchema, bool, string) {
	s, err := FromReader(r)
	if err != nil {
		return nil, false, err.Error()
	}
	return s, true, ""
}
