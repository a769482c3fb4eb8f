package decoder

import "fmt"

// StreamError wraps a failure from the underlying io.Reader itself (an
// unexpected EOF, a broken pipe, ...), as opposed to a malformed encoding
// found in bytes the stream did produce.
type StreamError struct {
	Err error
}

func (e *StreamError) Error() string { return fmt.Sprintf("avro decoder: stream error: %v", e.Err) }
func (e *StreamError) Unwrap() error { return e.Err }

// InvalidEncodingError is returned when the bytes read do not form a legal
// encoding of the requested type: a varint that never terminates within 10
// bytes, a boolean byte outside {0, 1}, a negative length where the format
// forbids one.
type InvalidEncodingError struct {
	Reason string
}

func (e *InvalidEncodingError) Error() string { return fmt.Sprintf("avro decoder: invalid encoding: %s", e.Reason) }

// OutOfRangeError is returned when a successfully decoded value does not
// fit the width the caller requested (DecodeInt reading a long-sized value).
type OutOfRangeError struct {
	Reason string
}

func (e *OutOfRangeError) Error() string { return fmt.Sprintf("avro decoder: out of range: %s", e.Reason) }

// UnskippableBlockError is returned by SkipArray/SkipMap when a block does
// not carry the optional byte-size prefix: skipping it would require
// decoding each item according to its schema, which this package — schema
// agnostic by design — cannot do.
type UnskippableBlockError struct {
	Count int64
}

func (e *UnskippableBlockError) Error() string {
	return fmt.Sprintf("avro decoder: cannot skip a %d-item block with no declared byte size", e.Count)
}
