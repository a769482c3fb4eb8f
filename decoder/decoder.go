package decoder

import (
	"encoding/binary"
	"io"
	"math"
)

const bufSize = 512

// Decoder pulls Avro-encoded primitive values from an underlying
// io.Reader. It holds no schema knowledge; the caller decides which
// method to call and in what order. A Decoder is bound to a stream via
// Init and may be rebound to a different stream by calling Init again —
// this mirrors the teacher's own reusable heetch/avro decoder, which
// keeps its scan buffer across Unmarshal calls to avoid reallocating on
// every message. Concurrent use of one Decoder from multiple goroutines
// is not supported.
type Decoder struct {
	r    io.Reader
	buf  []byte
	scan int

	readErr error
}

// New constructs a Decoder with no bound stream. Call Init before use.
func New() *Decoder {
	return &Decoder{buf: make([]byte, 0, bufSize)}
}

// Init binds d to r, discarding any buffered state left over from a prior
// stream.
func (d *Decoder) Init(r io.Reader) {
	d.r = r
	d.buf = d.buf[:0]
	d.scan = 0
	d.readErr = nil
}

// fill ensures at least n unread bytes are buffered, sliding already-read
// bytes to the front and growing the buffer as needed. It returns n when
// at least n bytes are buffered, and otherwise the number that are, which
// happens only at EOF or on a stream error (in which case err is the
// non-EOF cause).
func (d *Decoder) fill(n int) (int, error) {
	for len(d.buf)-d.scan < n && d.readErr == nil {
		if d.scan > 0 {
			copy(d.buf, d.buf[d.scan:])
			d.buf = d.buf[:len(d.buf)-d.scan]
			d.scan = 0
		}
		need := n - len(d.buf)
		if cap(d.buf)-len(d.buf) < need {
			grown := make([]byte, len(d.buf), len(d.buf)+need)
			copy(grown, d.buf)
			d.buf = grown
		}
		nr, err := d.r.Read(d.buf[len(d.buf):cap(d.buf)])
		d.buf = d.buf[:len(d.buf)+nr]
		if err != nil {
			d.readErr = err
		}
	}
	avail := len(d.buf) - d.scan
	if avail >= n {
		return n, nil
	}
	if d.readErr != nil && d.readErr != io.EOF {
		return avail, d.readErr
	}
	return avail, nil
}

// read returns the next n bytes, advancing scan. The returned slice
// aliases the internal buffer and is only valid until the next call.
func (d *Decoder) read(n int) ([]byte, error) {
	avail, err := d.fill(n)
	if avail < n {
		if err != nil {
			return nil, &StreamError{Err: err}
		}
		return nil, &StreamError{Err: io.ErrUnexpectedEOF}
	}
	b := d.buf[d.scan : d.scan+n]
	d.scan += n
	return b, nil
}

// discard advances past n bytes without materializing them, using bytes
// already buffered before falling back to the underlying reader.
func (d *Decoder) discard(n int) error {
	if n < 0 {
		return &InvalidEncodingError{Reason: "negative length"}
	}
	avail := len(d.buf) - d.scan
	if avail >= n {
		d.scan += n
		return nil
	}
	remaining := int64(n - avail)
	d.scan = len(d.buf)
	if d.readErr != nil && d.readErr != io.EOF {
		return &StreamError{Err: d.readErr}
	}
	copied, err := io.CopyN(io.Discard, d.r, remaining)
	if err != nil || copied < remaining {
		if err == nil || err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return &StreamError{Err: err}
	}
	return nil
}

// DecodeNull consumes zero bytes.
func (d *Decoder) DecodeNull() error { return nil }

// DecodeBool decodes a single byte, which must be 0 or 1.
func (d *Decoder) DecodeBool() (bool, error) {
	b, err := d.read(1)
	if err != nil {
		return false, err
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &InvalidEncodingError{Reason: "boolean byte must be 0 or 1"}
	}
}

// readRawVarint decodes the unsigned varint mantissa shared by int and
// long: 7 payload bits per byte, high bit signals continuation, at most
// 10 bytes (64 bits of payload space).
func (d *Decoder) readRawVarint() (uint64, error) {
	var v uint64
	for shift := uint(0); shift < 64; shift += 7 {
		b, err := d.read(1)
		if err != nil {
			return 0, err
		}
		v |= uint64(b[0]&0x7f) << shift
		if debugging {
			debugf("varint byte %#x at shift %d, accumulated %#x, continue=%v", b[0], shift, v, b[0]&0x80 != 0)
		}
		if b[0]&0x80 == 0 {
			return v, nil
		}
	}
	return 0, &InvalidEncodingError{Reason: "invalid varint"}
}

func zigzagDecode(v uint64) int64 {
	return int64(v>>1) ^ -int64(v&1)
}

// DecodeLong decodes a ZigZag varint as a signed 64-bit integer.
func (d *Decoder) DecodeLong() (int64, error) {
	v, err := d.readRawVarint()
	if err != nil {
		return 0, err
	}
	return zigzagDecode(v), nil
}

// DecodeInt decodes a ZigZag varint and requires it to fit a signed
// 32-bit integer.
func (d *Decoder) DecodeInt() (int32, error) {
	n, err := d.DecodeLong()
	if err != nil {
		return 0, err
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, &OutOfRangeError{Reason: "long value does not fit a signed 32-bit int"}
	}
	return int32(n), nil
}

// decodeLength reads the int-sized length prefix shared by string and
// bytes framing, rejecting a negative result.
func (d *Decoder) decodeLength() (int, error) {
	n, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, &InvalidEncodingError{Reason: "negative length"}
	}
	return int(n), nil
}

// DecodeFloat decodes a little-endian IEEE-754 binary32.
func (d *Decoder) DecodeFloat() (float32, error) {
	b, err := d.read(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

// DecodeDouble decodes a little-endian IEEE-754 binary64.
func (d *Decoder) DecodeDouble() (float64, error) {
	b, err := d.read(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// DecodeFixed reads exactly n raw bytes; n comes from the schema, not the
// stream.
func (d *Decoder) DecodeFixed(n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	b, err := d.read(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// DecodeBytes decodes a length-prefixed raw byte string.
func (d *Decoder) DecodeBytes() ([]byte, error) {
	n, err := d.decodeLength()
	if err != nil {
		return nil, err
	}
	return d.DecodeFixed(n)
}

// DecodeString decodes a length-prefixed UTF-8 string. The bytes are
// returned uninterpreted; no UTF-8 validation is performed.
func (d *Decoder) DecodeString() (string, error) {
	b, err := d.DecodeBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeEnum decodes an enum's zero-based symbol index.
func (d *Decoder) DecodeEnum() (int32, error) {
	return d.DecodeInt()
}

// DecodeUnionIndex decodes a union's zero-based branch index.
func (d *Decoder) DecodeUnionIndex() (int64, error) {
	return d.DecodeLong()
}

// SkipNull advances past a null value (zero bytes).
func (d *Decoder) SkipNull() error { return nil }

// SkipBool advances past a boolean value.
func (d *Decoder) SkipBool() error {
	_, err := d.DecodeBool()
	return err
}

// SkipInt advances past an int value.
func (d *Decoder) SkipInt() error {
	_, err := d.DecodeInt()
	return err
}

// SkipLong advances past a long value.
func (d *Decoder) SkipLong() error {
	_, err := d.DecodeLong()
	return err
}

// SkipFloat advances past a float value.
func (d *Decoder) SkipFloat() error {
	_, err := d.DecodeFloat()
	return err
}

// SkipDouble advances past a double value.
func (d *Decoder) SkipDouble() error {
	_, err := d.DecodeDouble()
	return err
}

// SkipFixed advances past n raw bytes without allocating them.
func (d *Decoder) SkipFixed(n int) error {
	return d.discard(n)
}

// SkipBytes advances past a length-prefixed byte string without
// allocating it.
func (d *Decoder) SkipBytes() error {
	n, err := d.decodeLength()
	if err != nil {
		return err
	}
	return d.discard(n)
}

// SkipString advances past a length-prefixed string without allocating it.
func (d *Decoder) SkipString() error { return d.SkipBytes() }

// SkipEnum advances past an enum symbol index.
func (d *Decoder) SkipEnum() error {
	_, err := d.DecodeEnum()
	return err
}

// SkipUnionIndex advances past a union branch index.
func (d *Decoder) SkipUnionIndex() error {
	_, err := d.DecodeUnionIndex()
	return err
}

// Drain discards any bytes already buffered ahead of the caller's read
// position. It does not read further from the underlying stream to force
// it to EOF — it only forgets read-ahead this Decoder is already holding.
func (d *Decoder) Drain() error {
	d.buf = d.buf[:0]
	d.scan = 0
	return nil
}
