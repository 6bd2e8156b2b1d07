// Package section defines the fixed-size header of the blockfreq index format.
//
// A persisted index buffer has this layout:
//
//	offset 0: num_distinct   (uint32, little-endian)
//	offset 4: counts_offset  (uint32, little-endian, byte offset to the bitmap)
//	offset 8: delta-varint value stream
//	counts_offset:              bitmap, ceil(num_distinct/8) bytes
//	counts_offset + bitmap_len: residual varint stream
package section

import (
	"github.com/arloliu/blockfreq/encoding"
	"github.com/arloliu/blockfreq/endian"
	"github.com/arloliu/blockfreq/errs"
)

var engine = endian.GetLittleEndianEngine()

// IndexHeader is the fixed 8-byte header at the start of every index buffer.
type IndexHeader struct {
	// NumDistinct is the number of distinct values the index covers.
	NumDistinct uint32 // byte offset 0-3
	// CountsOffset is the byte offset from buffer start to the bitmap section.
	// It always equals HeaderSize plus the value-section length.
	CountsOffset uint32 // byte offset 4-7
}

// NewIndexHeader creates a header for an index covering numDistinct values
// whose value section is valueSectionLen bytes long.
func NewIndexHeader(numDistinct uint32, valueSectionLen int) IndexHeader {
	return IndexHeader{
		NumDistinct:  numDistinct,
		CountsOffset: HeaderSize + uint32(valueSectionLen), //nolint:gosec
	}
}

// AppendTo appends the serialized header to dst and returns the extended slice.
func (h IndexHeader) AppendTo(dst []byte) []byte {
	dst = engine.AppendUint32(dst, h.NumDistinct)
	dst = engine.AppendUint32(dst, h.CountsOffset)

	return dst
}

// Bytes serializes the header into a new byte slice.
func (h IndexHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine.PutUint32(b[NumDistinctOffset:], h.NumDistinct)
	engine.PutUint32(b[CountsOffsetOffset:], h.CountsOffset)

	return b
}

// BitmapLen returns the length in bytes of the bitmap section.
func (h IndexHeader) BitmapLen() int {
	return encoding.BitmapLen(int(h.NumDistinct))
}

// ParseIndexHeader parses and validates a header from the start of an index
// buffer.
//
// Validation covers the whole fixed layout, not just the first 8 bytes:
//   - buffer holds at least HeaderSize bytes (errs.ErrTruncatedHeader)
//   - CountsOffset lies within [HeaderSize, len(data)] (errs.ErrOffsetOutOfRange)
//   - the bitmap section fits inside the buffer (errs.ErrBitmapLengthMismatch)
func ParseIndexHeader(data []byte) (IndexHeader, error) {
	if len(data) < HeaderSize {
		return IndexHeader{}, errs.ErrTruncatedHeader
	}

	h := IndexHeader{
		NumDistinct:  engine.Uint32(data[NumDistinctOffset:]),
		CountsOffset: engine.Uint32(data[CountsOffsetOffset:]),
	}

	if err := h.Validate(len(data)); err != nil {
		return IndexHeader{}, err
	}

	return h, nil
}

// Validate checks the header invariants against a buffer of bufLen bytes.
func (h IndexHeader) Validate(bufLen int) error {
	if h.CountsOffset < HeaderSize || int64(h.CountsOffset) > int64(bufLen) {
		return errs.ErrOffsetOutOfRange
	}

	if int64(h.CountsOffset)+int64(h.BitmapLen()) > int64(bufLen) {
		return errs.ErrBitmapLengthMismatch
	}

	return nil
}
