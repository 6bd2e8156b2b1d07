package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/blockfreq/errs"
)

func TestUvarint32_RoundTrip(t *testing.T) {
	values := []uint32{
		0, 1, 2, 127, 128, 129, 300, 16383, 16384,
		1<<21 - 1, 1 << 21, 1<<28 - 1, 1 << 28,
		math.MaxUint32 - 1, math.MaxUint32,
	}

	for _, v := range values {
		buf := AppendUvarint32(nil, v)
		require.LessOrEqual(t, len(buf), MaxVarintLen32, "value %d", v)

		got, n := Uvarint32(buf)
		require.Equal(t, len(buf), n, "value %d", v)
		require.Equal(t, v, got, "value %d", v)
	}
}

func TestUvarint32_EncodedLengths(t *testing.T) {
	require.Len(t, AppendUvarint32(nil, 0), 1)
	require.Len(t, AppendUvarint32(nil, 127), 1)
	require.Len(t, AppendUvarint32(nil, 128), 2)
	require.Len(t, AppendUvarint32(nil, 16383), 2)
	require.Len(t, AppendUvarint32(nil, 16384), 3)
	require.Len(t, AppendUvarint32(nil, math.MaxUint32), 5)
}

func TestUvarint32_Truncated(t *testing.T) {
	// Continuation bit set with no terminating byte.
	for _, data := range [][]byte{nil, {0x80}, {0xff, 0xff}, {0x80, 0x80, 0x80, 0x80}} {
		_, n := Uvarint32(data)
		require.Equal(t, 0, n)
	}
}

func TestUvarint32_Overflow(t *testing.T) {
	// 6-byte varint: one byte past the 32-bit maximum.
	_, n := Uvarint32([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01})
	require.Negative(t, n)

	// 5-byte varint whose top byte carries more than 4 payload bits.
	_, n = Uvarint32([]byte{0xff, 0xff, 0xff, 0xff, 0x10})
	require.Negative(t, n)

	// 5-byte varint at exactly the 32-bit maximum is still valid.
	v, n := Uvarint32([]byte{0xff, 0xff, 0xff, 0xff, 0x0f})
	require.Equal(t, 5, n)
	require.Equal(t, uint32(math.MaxUint32), v)
}

func TestSkipUvarint(t *testing.T) {
	var buf []byte
	buf = AppendUvarint32(buf, 1)
	buf = AppendUvarint32(buf, 300)
	buf = AppendUvarint32(buf, math.MaxUint32)

	offset, err := SkipUvarint(buf, 0)
	require.NoError(t, err)
	require.Equal(t, 1, offset)

	offset, err = SkipUvarint(buf, offset)
	require.NoError(t, err)
	require.Equal(t, 3, offset)

	offset, err = SkipUvarint(buf, offset)
	require.NoError(t, err)
	require.Equal(t, len(buf), offset)

	_, err = SkipUvarint([]byte{0x80, 0x80}, 0)
	require.ErrorIs(t, err, errs.ErrTruncatedVarint)
}
