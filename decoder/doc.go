// Package decoder implements Avro's binary encoding: typed pull operations
// over an io.Reader that reproduce the wire format bit-exactly. It does not
// look at a schema — the caller (a schema walker, outside this package's
// scope) is responsible for invoking the right call in the right order.
package decoder
