package encoding

import (
	"github.com/arloliu/blockfreq/errs"
)

// MaxVarintLen32 is the maximum number of bytes a varint-encoded uint32 occupies.
const MaxVarintLen32 = 5

// AppendUvarint32 appends v to dst as a little-endian base-128 varint and
// returns the extended slice.
//
// Each byte carries 7 payload bits, least-significant group first, with the
// high bit set on every byte except the last. The full 32-bit domain fits in
// at most MaxVarintLen32 bytes.
func AppendUvarint32(dst []byte, v uint32) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}

	return append(dst, byte(v))
}

// Uvarint32 decodes a uint32 varint from the beginning of data and returns the
// value and the number of bytes consumed.
//
// Following the encoding/binary convention:
//   - n > 0: success, n bytes consumed
//   - n == 0: data is truncated (ran out of bytes before the terminator)
//   - n < 0: overflow, the varint does not fit in 32 bits; -n bytes were read
func Uvarint32(data []byte) (uint32, int) {
	var x uint32
	var s uint

	for i, b := range data {
		if i == MaxVarintLen32 {
			return 0, -(i + 1)
		}
		if b < 0x80 {
			// The 5th byte contributes bits 28-31 only.
			if i == MaxVarintLen32-1 && b > 0x0f {
				return 0, -(i + 1)
			}

			return x | uint32(b)<<s, i + 1
		}
		x |= uint32(b&0x7f) << s
		s += 7
	}

	return 0, 0
}

// SkipUvarint advances past one varint in data starting at offset and returns
// the offset of the byte after its terminator.
//
// Returns errs.ErrTruncatedVarint if the varint has no terminating byte within
// data.
func SkipUvarint(data []byte, offset int) (int, error) {
	for offset < len(data) {
		b := data[offset]
		offset++
		if b < 0x80 {
			return offset, nil
		}
	}

	return offset, errs.ErrTruncatedVarint
}

// uvarintErr maps a non-positive Uvarint32 byte count to its sentinel error.
func uvarintErr(n int) error {
	if n == 0 {
		return errs.ErrTruncatedVarint
	}

	return errs.ErrVarintOverflow
}
