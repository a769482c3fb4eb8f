package decoder

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenario_S1_Int mirrors the spec's worked example: schema "int",
// bytes 0x04 decode to 2.
func TestScenario_S1_Int(t *testing.T) {
	// Given
	d := newDecoder([]byte{0x04})

	// When
	got, err := d.DecodeInt()

	// Then
	require.NoError(t, err)
	assert.EqualValues(t, 2, got)
}

// TestScenario_S2_Long mirrors the spec's worked long examples.
func TestScenario_S2_Long(t *testing.T) {
	// Given
	testCases := []struct {
		name     string
		bytes    []byte
		expected int64
	}{
		{"0x01", []byte{0x01}, -1},
		{"0x7f", []byte{0x7f}, -64},
		{"0x80 0x01", []byte{0x80, 0x01}, 64},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// When
			d := newDecoder(tc.bytes)
			got, err := d.DecodeLong()

			// Then
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

// TestScenario_S3_ArrayOfInt mirrors the spec's array-of-int example: a
// single positive block of two items, [1, 2], terminated by 0.
func TestScenario_S3_ArrayOfInt(t *testing.T) {
	// Given
	d := newDecoder([]byte{0x04, 0x02, 0x04, 0x00})

	// When
	count, err := d.ArrayStart()
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	items := make([]int32, 0, count)
	for i := int64(0); i < count; i++ {
		v, err := d.DecodeInt()
		require.NoError(t, err)
		items = append(items, v)
	}
	terminator, err := d.ArrayNext()

	// Then
	require.NoError(t, err)
	assert.EqualValues(t, 0, terminator)
	assert.Equal(t, []int32{1, 2}, items)
}

// TestScenario_S5_MapOfString mirrors the spec's map example: one entry
// "a" -> "b".
func TestScenario_S5_MapOfString(t *testing.T) {
	// Given
	d := newDecoder([]byte{0x02, 0x02, 0x61, 0x02, 0x62, 0x00})

	// When
	count, err := d.MapStart()
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	key, err := d.DecodeString()
	require.NoError(t, err)
	value, err := d.DecodeString()
	require.NoError(t, err)
	terminator, err := d.MapNext()

	// Then
	require.NoError(t, err)
	assert.Equal(t, "a", key)
	assert.Equal(t, "b", value)
	assert.EqualValues(t, 0, terminator)
}

// TestScenario_S6_Fixed mirrors the spec's fixed example: 16 raw bytes
// decoded verbatim.
func TestScenario_S6_Fixed(t *testing.T) {
	// Given
	raw := bytes.Repeat([]byte{0x09}, 16)
	d := newDecoder(raw)

	// When
	got, err := d.DecodeFixed(16)

	// Then
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

// TestProperty_BlockFramingEquivalence checks that the same item sequence
// is read whether a block declares its count positively or negatively
// (with a byte-size header).
func TestProperty_BlockFramingEquivalence(t *testing.T) {
	// Given
	items := []byte{0xaa, 0xbb, 0xcc}

	var positive bytes.Buffer
	positive.Write(encodeVarint(3))
	positive.Write(items)
	positive.Write(encodeVarint(0))

	var negative bytes.Buffer
	negative.Write(encodeVarint(-3))
	negative.Write(encodeVarint(3))
	negative.Write(items)
	negative.Write(encodeVarint(0))

	// When
	dPos := newDecoder(positive.Bytes())
	countPos, err := dPos.ArrayStart()
	require.NoError(t, err)
	gotPos, err := dPos.DecodeFixed(int(countPos))
	require.NoError(t, err)

	dNeg := newDecoder(negative.Bytes())
	countNeg, err := dNeg.ArrayStart()
	require.NoError(t, err)
	gotNeg, err := dNeg.DecodeFixed(int(countNeg))
	require.NoError(t, err)

	// Then
	assert.Equal(t, gotPos, gotNeg)
	assert.Equal(t, items, gotPos)
}

// TestProperty_SkipEquivalence checks that decoding a value and skipping
// an identically encoded value leave the stream at the same offset.
func TestProperty_SkipEquivalence(t *testing.T) {
	// Given
	var buf bytes.Buffer
	buf.Write(encodeVarint(7)) // zigzag-encoded long, trailer byte follows
	buf.WriteByte(0xff)

	// When
	dDecode := newDecoder(buf.Bytes())
	_, err := dDecode.DecodeLong()
	require.NoError(t, err)
	decodeTrailer, err := dDecode.DecodeFixed(1)
	require.NoError(t, err)

	dSkip := newDecoder(buf.Bytes())
	err = dSkip.SkipLong()
	require.NoError(t, err)
	skipTrailer, err := dSkip.DecodeFixed(1)
	require.NoError(t, err)

	// Then
	assert.Equal(t, decodeTrailer, skipTrailer)
}
