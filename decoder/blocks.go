package decoder

// blockHeader performs the full block-framing read used by ArrayStart and
// MapStart: a ZigZag long count, where 0 ends the container, a positive
// value is the item count of this block, and a negative value is followed
// by a byte-size long (read and discarded here — only SkipArray/SkipMap
// need it). It always returns a non-negative count.
func (d *Decoder) blockHeader() (int64, error) {
	count, err := d.DecodeLong()
	if err != nil {
		return 0, err
	}
	if count == 0 {
		if debugging {
			debugf("block header 0: end of container")
		}
		return 0, nil
	}
	if count < 0 {
		size, err := d.DecodeLong()
		if err != nil {
			return 0, err
		}
		if size < 0 {
			return 0, &InvalidEncodingError{Reason: "negative block byte size"}
		}
		if debugging {
			debugf("block header %d: byte-sized block, %d items, %d bytes", count, -count, size)
		}
		return -count, nil
	}
	if debugging {
		debugf("block header %d: positive-count block", count)
	}
	return count, nil
}

// ArrayStart reads the first block header of an array, returning its item
// count (0 for an empty array).
func (d *Decoder) ArrayStart() (int64, error) { return d.blockHeader() }

// MapStart reads the first block header of a map, returning its item
// count (0 for an empty map).
func (d *Decoder) MapStart() (int64, error) { return d.blockHeader() }

// ArrayNext reads the next block header as a raw ZigZag long, with no
// sign interpretation: the caller decoding item-by-item only ever expects
// a positive count or the 0 terminator, and a writer that emitted a
// negative (byte-sized) block here leaves that byte-size long for the
// caller to fall through and read itself. This is a deliberate asymmetry
// with ArrayStart, which always fully interprets the header.
func (d *Decoder) ArrayNext() (int64, error) { return d.DecodeLong() }

// MapNext is ArrayNext's counterpart for maps.
func (d *Decoder) MapNext() (int64, error) { return d.DecodeLong() }

// skipBlocks drains every block of an array or map, using the declared
// byte size to skip a negative-count block in one jump. A positive-count
// block carries no byte size, so it cannot be skipped without decoding
// each item according to its schema — which this package does not have —
// and skipBlocks reports that as UnskippableBlockError instead of
// guessing.
func (d *Decoder) skipBlocks() error {
	for {
		count, err := d.DecodeLong()
		if err != nil {
			return err
		}
		if count == 0 {
			return nil
		}
		if count < 0 {
			size, err := d.DecodeLong()
			if err != nil {
				return err
			}
			if size < 0 {
				return &InvalidEncodingError{Reason: "negative block byte size"}
			}
			if err := d.discard(int(size)); err != nil {
				return err
			}
			continue
		}
		return &UnskippableBlockError{Count: count}
	}
}

// SkipArray drains an entire array's blocks without materializing items.
func (d *Decoder) SkipArray() error { return d.skipBlocks() }

// SkipMap drains an entire map's blocks without materializing entries.
func (d *Decoder) SkipMap() error { return d.skipBlocks() }
