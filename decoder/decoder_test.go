package decoder

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zigzagEncode(n int64) uint64 {
	return uint64((n << 1) ^ (n >> 63))
}

func encodeVarint(n int64) []byte {
	v := zigzagEncode(n)
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			out = append(out, b|0x80)
		} else {
			out = append(out, b)
			break
		}
	}
	return out
}

func newDecoder(b []byte) *Decoder {
	d := New()
	d.Init(bytes.NewReader(b))
	return d
}

func TestDecodeLong_RoundTrip(t *testing.T) {
	// Given
	testCases := []int64{0, 1, -1, 42, -42, math.MaxInt64, math.MinInt64, 1 << 40, -(1 << 40)}

	for _, tc := range testCases {
		// When
		d := newDecoder(encodeVarint(tc))
		got, err := d.DecodeLong()

		// Then
		require.NoError(t, err)
		assert.Equal(t, tc, got)
	}
}

func TestDecodeInt_RoundTrip(t *testing.T) {
	// Given
	testCases := []int32{0, 1, -1, math.MaxInt32, math.MinInt32}

	for _, tc := range testCases {
		// When
		d := newDecoder(encodeVarint(int64(tc)))
		got, err := d.DecodeInt()

		// Then
		require.NoError(t, err)
		assert.Equal(t, tc, got)
	}
}

func TestDecodeInt_OutOfRange(t *testing.T) {
	// Given
	d := newDecoder(encodeVarint(int64(math.MaxInt32) + 1))

	// When
	_, err := d.DecodeInt()

	// Then
	assert.IsType(t, &OutOfRangeError{}, err)
}

func TestDecodeLong_UnterminatedVarint(t *testing.T) {
	// Given
	b := make([]byte, 10)
	for i := range b {
		b[i] = 0xff
	}

	// When
	d := newDecoder(b)
	_, err := d.DecodeLong()

	// Then
	assert.IsType(t, &InvalidEncodingError{}, err)
}

func TestDecodeBool_Domain(t *testing.T) {
	// Given
	testCases := []struct {
		name     string
		byteVal  byte
		expected bool
		wantErr  bool
	}{
		{"zero is false", 0, false, false},
		{"one is true", 1, true, false},
		{"two is invalid", 2, false, true},
		{"255 is invalid", 255, false, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// When
			d := newDecoder([]byte{tc.byteVal})
			got, err := d.DecodeBool()

			// Then
			if tc.wantErr {
				assert.IsType(t, &InvalidEncodingError{}, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestDecodeFloat(t *testing.T) {
	// Given
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, math.Float32bits(3.25))

	// When
	d := newDecoder(buf)
	got, err := d.DecodeFloat()

	// Then
	require.NoError(t, err)
	assert.Equal(t, float32(3.25), got)
}

func TestDecodeDouble(t *testing.T) {
	// Given
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, math.Float64bits(-7.5))

	// When
	d := newDecoder(buf)
	got, err := d.DecodeDouble()

	// Then
	require.NoError(t, err)
	assert.Equal(t, -7.5, got)
}

func TestDecodeString(t *testing.T) {
	// Given
	var buf bytes.Buffer
	buf.Write(encodeVarint(5))
	buf.WriteString("hello")

	// When
	d := newDecoder(buf.Bytes())
	got, err := d.DecodeString()

	// Then
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestDecodeString_NegativeLength(t *testing.T) {
	// Given
	d := newDecoder(encodeVarint(-1))

	// When
	_, err := d.DecodeString()

	// Then
	assert.IsType(t, &InvalidEncodingError{}, err)
}

func TestDecodeBytes_Empty(t *testing.T) {
	// Given
	d := newDecoder(encodeVarint(0))

	// When
	got, err := d.DecodeBytes()

	// Then
	require.NoError(t, err)
	assert.Equal(t, []byte{}, got)
}

func TestDecodeFixed(t *testing.T) {
	// Given
	d := newDecoder([]byte{0xde, 0xad, 0xbe, 0xef})

	// When
	got, err := d.DecodeFixed(4)

	// Then
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, got)
}

func TestDecodeFixed_UnexpectedEOF(t *testing.T) {
	// Given
	d := newDecoder([]byte{0x01, 0x02})

	// When
	_, err := d.DecodeFixed(4)

	// Then
	assert.IsType(t, &StreamError{}, err)
}

func TestArrayStart_SimpleBlock(t *testing.T) {
	// Given
	d := newDecoder(encodeVarint(3))

	// When
	count, err := d.ArrayStart()

	// Then
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestArrayStart_EmptyArray(t *testing.T) {
	// Given
	d := newDecoder(encodeVarint(0))

	// When
	count, err := d.ArrayStart()

	// Then
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestArrayStart_NegativeBlockDiscardsByteSize(t *testing.T) {
	// Given
	var buf bytes.Buffer
	buf.Write(encodeVarint(-2))
	buf.Write(encodeVarint(10)) // byte size, discarded
	buf.Write([]byte{0xaa, 0xbb})

	// When
	d := newDecoder(buf.Bytes())
	count, err := d.ArrayStart()

	// Then
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	next, err := d.DecodeFixed(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xaa, 0xbb}, next)
}

func TestArrayNext_ReturnsRawZigzagLong(t *testing.T) {
	// Given
	d := newDecoder(encodeVarint(-5))

	// When
	count, err := d.ArrayNext()

	// Then
	require.NoError(t, err)
	assert.EqualValues(t, -5, count)
}

func TestSkipArray_DrainsByteSizedBlocks(t *testing.T) {
	// Given
	var buf bytes.Buffer
	buf.Write(encodeVarint(-2))
	buf.Write(encodeVarint(6)) // byte size of the 2-item block
	buf.Write([]byte{1, 2, 3, 4, 5, 6})
	buf.Write(encodeVarint(0)) // terminator
	buf.WriteString("trailing")

	// When
	d := newDecoder(buf.Bytes())
	err := d.SkipArray()

	// Then
	require.NoError(t, err)
	rest, err := d.DecodeFixed(8)
	require.NoError(t, err)
	assert.Equal(t, "trailing", string(rest))
}

func TestSkipArray_PositiveBlockIsUnskippable(t *testing.T) {
	// Given
	d := newDecoder(encodeVarint(3))

	// When
	err := d.SkipArray()

	// Then
	assert.IsType(t, &UnskippableBlockError{}, err)
}

func TestDecodeEnum(t *testing.T) {
	// Given
	d := newDecoder(encodeVarint(2))

	// When
	got, err := d.DecodeEnum()

	// Then
	require.NoError(t, err)
	assert.EqualValues(t, 2, got)
}

func TestDecodeUnionIndex(t *testing.T) {
	// Given
	d := newDecoder(encodeVarint(1))

	// When
	got, err := d.DecodeUnionIndex()

	// Then
	require.NoError(t, err)
	assert.EqualValues(t, 1, got)
}

func TestInit_RebindsStream(t *testing.T) {
	// Given
	d := New()
	d.Init(bytes.NewReader(encodeVarint(1)))
	_, err := d.DecodeLong()
	require.NoError(t, err)

	// When
	d.Init(bytes.NewReader(encodeVarint(2)))
	got, err := d.DecodeLong()

	// Then
	require.NoError(t, err)
	assert.EqualValues(t, 2, got)
}

func TestDrain_DiscardsBufferedReadAhead(t *testing.T) {
	// Given
	d := newDecoder([]byte{1, 2, 3, 4})
	_, err := d.DecodeFixed(1)
	require.NoError(t, err)

	// When
	err = d.Drain()

	// Then
	require.NoError(t, err)
	_, err = d.DecodeFixed(1)
	assert.IsType(t, &StreamError{}, err)
}
