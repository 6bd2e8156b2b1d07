package encoding

import (
	"iter"

	"github.com/arloliu/blockfreq/internal/pool"
)

// ValueDeltaEncoder encodes an ascending sequence of distinct uint32 values as
// a delta-compressed varint stream.
//
// The first value is stored as an absolute varint; every subsequent value is
// stored as varint(value - previous). Because the input is sorted and
// distinct, all deltas after the first value are strictly positive and small
// deltas compress to a single byte.
//
// The caller must write values in strictly ascending order; the encoder does
// not re-sort or deduplicate.
type ValueDeltaEncoder struct {
	prev  uint32
	buf   *pool.ByteBuffer
	count int
}

var _ ColumnarEncoder[uint32] = (*ValueDeltaEncoder)(nil)

// NewValueDeltaEncoder creates a new delta-compressed value encoder backed by
// a pooled buffer.
func NewValueDeltaEncoder() *ValueDeltaEncoder {
	return &ValueDeltaEncoder{
		buf: pool.GetIndexBuffer(),
	}
}

// Write encodes a single value as an absolute varint (first value) or as a
// delta from the previous value.
func (e *ValueDeltaEncoder) Write(value uint32) {
	e.buf.Grow(MaxVarintLen32)

	if e.count == 0 {
		e.buf.B = AppendUvarint32(e.buf.B, value)
	} else {
		e.buf.B = AppendUvarint32(e.buf.B, value-e.prev)
	}

	e.prev = value
	e.count++
}

// WriteSlice encodes a slice of ascending distinct values.
//
// Closely spaced values encode to one byte each, so the buffer is sized for
// two bytes per value up front to avoid repeated growth.
func (e *ValueDeltaEncoder) WriteSlice(values []uint32) {
	if len(values) == 0 {
		return
	}

	e.buf.Grow(MaxVarintLen32 + 2*len(values))

	for _, v := range values {
		if e.count == 0 {
			e.buf.B = AppendUvarint32(e.buf.B, v)
		} else {
			e.buf.B = AppendUvarint32(e.buf.B, v-e.prev)
		}
		e.prev = v
		e.count++
	}
}

// Bytes returns the encoded value section. The returned slice is valid until
// the next call to Reset or Finish and must not be modified by the caller.
func (e *ValueDeltaEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of values written since the last Reset.
func (e *ValueDeltaEncoder) Len() int {
	return e.count
}

// Size returns the encoded size in bytes of the value section.
func (e *ValueDeltaEncoder) Size() int {
	return e.buf.Len()
}

// Reset clears the encoder state and accumulated data, retaining the buffer
// for a new section.
func (e *ValueDeltaEncoder) Reset() {
	e.buf.Reset()
	e.prev = 0
	e.count = 0
}

// Finish returns the internal buffer to the pool. The encoder is unusable
// afterwards.
func (e *ValueDeltaEncoder) Finish() {
	pool.PutIndexBuffer(e.buf)
	e.buf = nil
	e.prev = 0
	e.count = 0
}

// ValueDeltaDecoder decodes delta-compressed value sections produced by
// ValueDeltaEncoder.
//
// The decoder is stateless and safe for concurrent use. Varint positions are
// not randomly addressable, so every operation is a sequential running-sum
// scan from the start of the section.
type ValueDeltaDecoder struct{}

var _ ColumnarDecoder[uint32] = ValueDeltaDecoder{}

// NewValueDeltaDecoder creates a new delta value decoder.
func NewValueDeltaDecoder() ValueDeltaDecoder {
	return ValueDeltaDecoder{}
}

// All returns an iterator yielding every value in the section in ascending
// order, reconstructed by running-sum accumulation.
//
// Iteration stops early if the section is truncated or contains an overlong
// varint; use Search for the error-reporting lookup path.
func (d ValueDeltaDecoder) All(data []byte, count int) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		var cur uint32
		offset := 0

		for i := 0; i < count; i++ {
			v, n := Uvarint32(data[offset:])
			if n <= 0 {
				return
			}
			offset += n

			if i == 0 {
				cur = v
			} else {
				cur += v
			}

			if !yield(cur) {
				return
			}
		}
	}
}

// Search scans the section for target and returns its item index.
//
// The scan accumulates the running sum one varint at a time and stops as soon
// as the sum equals target (found) or exceeds it (absent: the section is
// ascending, so no later item can match). This makes lookups O(rank of
// target) rather than O(count) for values early in the section.
//
// Returns:
//   - int: item index of target within the section (0-based), valid when found
//   - bool: true if target is present
//   - error: errs.ErrTruncatedVarint or errs.ErrVarintOverflow on malformed data
func (d ValueDeltaDecoder) Search(data []byte, count int, target uint32) (int, bool, error) {
	var cur uint32
	offset := 0

	for i := 0; i < count; i++ {
		v, n := Uvarint32(data[offset:])
		if n <= 0 {
			return 0, false, uvarintErr(n)
		}
		offset += n

		if i == 0 {
			cur = v
		} else {
			cur += v
		}

		if cur == target {
			return i, true, nil
		}
		if cur > target {
			// Ascending order guarantees no further item can match.
			return 0, false, nil
		}
	}

	return 0, false, nil
}
