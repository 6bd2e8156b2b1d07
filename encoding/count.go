package encoding

import (
	"iter"
	"math"
	"math/bits"

	"github.com/arloliu/blockfreq/errs"
	"github.com/arloliu/blockfreq/internal/pool"
)

// CountEncoder encodes per-item occurrence counts as a hybrid bitmap/varint
// section.
//
// The section has two parts:
//
//   - bitmap: ceil(n/8) bytes, bit i set when item i occurs exactly once
//   - residual stream: varint(count - 2) for every item whose count is not 1,
//     in ascending item-index order
//
// Single-occurrence values are the common case in high-cardinality blocks, so
// they cost one bit instead of one byte. Counts are at least 1 by
// construction, so count-2 is well-defined exactly when the bit is cleared.
//
// Counts must be written in the same item order as the value section.
type CountEncoder struct {
	bitmap   []byte
	residual *pool.ByteBuffer
	out      *pool.ByteBuffer
	count    int
}

var _ ColumnarEncoder[uint32] = (*CountEncoder)(nil)

// NewCountEncoder creates a new hybrid bitmap/varint count encoder backed by
// pooled buffers.
func NewCountEncoder() *CountEncoder {
	return &CountEncoder{
		residual: pool.GetIndexBuffer(),
		out:      pool.GetIndexBuffer(),
	}
}

// Write encodes the occurrence count of the next item. count must be >= 1.
func (e *CountEncoder) Write(count uint32) {
	i := e.count
	if i%8 == 0 {
		e.bitmap = append(e.bitmap, 0)
	}

	if count == 1 {
		e.bitmap[i/8] |= 1 << (i % 8)
	} else {
		e.residual.Grow(MaxVarintLen32)
		e.residual.B = AppendUvarint32(e.residual.B, count-2)
	}

	e.count++
}

// WriteSlice encodes a slice of occurrence counts in item order.
func (e *CountEncoder) WriteSlice(counts []uint32) {
	for _, c := range counts {
		e.Write(c)
	}
}

// Bytes assembles and returns the counts section: bitmap followed by the
// residual varint stream. The returned slice is valid until the next call to
// Write, Reset, or Finish.
func (e *CountEncoder) Bytes() []byte {
	e.out.Reset()
	e.out.Grow(len(e.bitmap) + e.residual.Len())
	e.out.MustWrite(e.bitmap)
	e.out.MustWrite(e.residual.Bytes())

	return e.out.Bytes()
}

// Len returns the number of counts written since the last Reset.
func (e *CountEncoder) Len() int {
	return e.count
}

// Size returns the encoded size in bytes of the counts section.
func (e *CountEncoder) Size() int {
	return len(e.bitmap) + e.residual.Len()
}

// Reset clears the encoder state and accumulated data, retaining buffers for
// a new section.
func (e *CountEncoder) Reset() {
	e.bitmap = e.bitmap[:0]
	e.residual.Reset()
	e.out.Reset()
	e.count = 0
}

// Finish returns the internal buffers to the pool. The encoder is unusable
// afterwards.
func (e *CountEncoder) Finish() {
	pool.PutIndexBuffer(e.residual)
	pool.PutIndexBuffer(e.out)
	e.residual = nil
	e.out = nil
	e.bitmap = nil
	e.count = 0
}

// BitmapLen returns the bitmap length in bytes for a section of numItems counts.
func BitmapLen(numItems int) int {
	return (numItems + 7) / 8
}

// CountDecoder decodes counts sections produced by CountEncoder.
//
// The decoder is stateless and safe for concurrent use.
type CountDecoder struct{}

var _ ColumnarDecoder[uint32] = CountDecoder{}

// NewCountDecoder creates a new count decoder.
func NewCountDecoder() CountDecoder {
	return CountDecoder{}
}

// At returns the occurrence count of item index within the counts section.
//
// If bit index is set the count is 1. Otherwise the number of cleared bits in
// [0, index) determines how many residual varints precede this item's entry;
// that many varints are skipped sequentially before decoding the entry and
// adding back the 2 subtracted at encode time.
//
// Parameters:
//   - section: counts section bytes (bitmap followed by residual stream)
//   - index: 0-based item index, must be < numItems
//   - numItems: total number of items in the section
//
// Returns errs.ErrBitmapLengthMismatch if the section cannot hold the bitmap,
// errs.ErrOffsetOutOfRange for an index outside [0, numItems), or a varint
// decode error if the residual stream is malformed.
func (d CountDecoder) At(section []byte, index int, numItems int) (uint32, error) {
	bitmapLen := BitmapLen(numItems)
	if len(section) < bitmapLen {
		return 0, errs.ErrBitmapLengthMismatch
	}
	if index < 0 || index >= numItems {
		return 0, errs.ErrOffsetOutOfRange
	}

	if section[index/8]&(1<<(index%8)) != 0 {
		return 1, nil
	}

	// Cleared bits before index = residual entries to skip.
	skip := index - onesBefore(section[:bitmapLen], index)

	offset := bitmapLen
	var err error
	for s := 0; s < skip; s++ {
		offset, err = SkipUvarint(section, offset)
		if err != nil {
			return 0, err
		}
	}

	v, n := Uvarint32(section[offset:])
	if n <= 0 {
		return 0, uvarintErr(n)
	}
	if v > math.MaxUint32-2 {
		return 0, errs.ErrVarintOverflow
	}

	return v + 2, nil
}

// All returns an iterator yielding the count of every item in the section, in
// item order. Iteration stops early on malformed data.
func (d CountDecoder) All(section []byte, count int) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		bitmapLen := BitmapLen(count)
		if len(section) < bitmapLen {
			return
		}

		offset := bitmapLen
		for i := 0; i < count; i++ {
			if section[i/8]&(1<<(i%8)) != 0 {
				if !yield(1) {
					return
				}

				continue
			}

			v, n := Uvarint32(section[offset:])
			if n <= 0 || v > math.MaxUint32-2 {
				return
			}
			offset += n

			if !yield(v + 2) {
				return
			}
		}
	}
}

// onesBefore counts the set bits at bit indices [0, index) of bitmap.
func onesBefore(bitmap []byte, index int) int {
	ones := 0
	for i := 0; i < index/8; i++ {
		ones += bits.OnesCount8(bitmap[i])
	}
	if rem := index % 8; rem > 0 {
		mask := byte(1<<rem) - 1
		ones += bits.OnesCount8(bitmap[index/8] & mask)
	}

	return ones
}
