package compiler

import "fmt"

// MissingFieldError is returned when a JSON object is missing a field the
// dispatched-to complex type requires (e.g. a record with no "fields").
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("avro schema: missing required field %q", e.Field)
}

// TypeMismatchError is returned when a JSON field has the wrong JSON type
// for the position it occupies (e.g. "size" that isn't a number).
type TypeMismatchError struct {
	Field    string
	Expected string
	Got      interface{}
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("avro schema: field %q: expected %s, got %#v", e.Field, e.Expected, e.Got)
}

// UnknownTypeError is returned when a string type reference does not name
// a primitive and does not resolve against any registered named type.
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("avro schema: unknown type %q", e.Name)
}

// BadSizeError is returned when a fixed type's "size" is not strictly
// positive (invariant 3).
type BadSizeError struct {
	Size int
}

func (e *BadSizeError) Error() string {
	return fmt.Sprintf("avro schema: fixed size must be positive, got %d", e.Size)
}

// BadSymbolError is returned when an enum's "symbols" array contains a
// non-string element.
type BadSymbolError struct {
	Value interface{}
}

func (e *BadSymbolError) Error() string {
	return fmt.Sprintf("avro schema: enum symbol must be a string, got %#v", e.Value)
}

// BadDefaultError is returned when a field's "default" JSON value does not
// match the form its compiled type requires.
type BadDefaultError struct {
	Reason string
}

func (e *BadDefaultError) Error() string {
	return fmt.Sprintf("avro schema: bad default value: %s", e.Reason)
}

// MissingDefaultError is returned when materializing a record default and
// a field of that record has no corresponding key in the JSON object.
type MissingDefaultError struct {
	Field string
}

func (e *MissingDefaultError) Error() string {
	return fmt.Sprintf("avro schema: no default value given for field %q", e.Field)
}

// BadSchemaError is returned for dispatch-level structural problems: an
// invalid "type" dispatch value, or — per §3's resolved open question — a
// conflicting redefinition of an already-registered name.
type BadSchemaError struct {
	Reason string
}

func (e *BadSchemaError) Error() string {
	return fmt.Sprintf("avro schema: %s", e.Reason)
}
