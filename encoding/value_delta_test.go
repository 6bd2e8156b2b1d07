package encoding

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/blockfreq/errs"
)

func TestValueDeltaEncoder_Write(t *testing.T) {
	encoder := NewValueDeltaEncoder()
	defer encoder.Finish()

	encoder.Write(5)
	encoder.Write(7)
	encoder.Write(9)

	// Absolute 5, then deltas +2, +2.
	require.Equal(t, []byte{5, 2, 2}, encoder.Bytes())
	require.Equal(t, 3, encoder.Len())
	require.Equal(t, 3, encoder.Size())
}

func TestValueDeltaEncoder_WriteSlice(t *testing.T) {
	encoder := NewValueDeltaEncoder()
	defer encoder.Finish()

	encoder.WriteSlice([]uint32{5, 7, 9})
	require.Equal(t, []byte{5, 2, 2}, encoder.Bytes())

	encoder.Reset()
	encoder.WriteSlice(nil)
	require.Equal(t, 0, encoder.Len())
	require.Empty(t, encoder.Bytes())
}

func TestValueDeltaEncoder_WideRange(t *testing.T) {
	values := []uint32{0, 1, 127, 128, 1 << 20, math.MaxUint32}

	encoder := NewValueDeltaEncoder()
	defer encoder.Finish()
	encoder.WriteSlice(values)

	decoder := NewValueDeltaDecoder()
	decoded := slices.Collect(decoder.All(encoder.Bytes(), encoder.Len()))
	require.Equal(t, values, decoded)
}

func TestValueDeltaDecoder_All(t *testing.T) {
	decoder := NewValueDeltaDecoder()

	decoded := slices.Collect(decoder.All([]byte{5, 2, 2}, 3))
	require.Equal(t, []uint32{5, 7, 9}, decoded)

	// Zero items yields nothing regardless of data.
	require.Empty(t, slices.Collect(decoder.All([]byte{5}, 0)))

	// Early break.
	for v := range decoder.All([]byte{5, 2, 2}, 3) {
		require.Equal(t, uint32(5), v)
		break
	}
}

func TestValueDeltaDecoder_Search(t *testing.T) {
	data := []byte{5, 2, 2} // values 5, 7, 9
	decoder := NewValueDeltaDecoder()

	idx, found, err := decoder.Search(data, 3, 5)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 0, idx)

	idx, found, err = decoder.Search(data, 3, 9)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 2, idx)

	// 6 falls strictly between 5 and 7: overshoot at 7 proves absence.
	_, found, err = decoder.Search(data, 3, 6)
	require.NoError(t, err)
	require.False(t, found)

	// 100 is past the last value: absent after a full scan.
	_, found, err = decoder.Search(data, 3, 100)
	require.NoError(t, err)
	require.False(t, found)

	// 0 is below the first value: overshoot on the first item.
	_, found, err = decoder.Search(data, 3, 0)
	require.NoError(t, err)
	require.False(t, found)
}

func TestValueDeltaDecoder_Search_Malformed(t *testing.T) {
	decoder := NewValueDeltaDecoder()

	_, _, err := decoder.Search([]byte{0x80}, 1, 5)
	require.ErrorIs(t, err, errs.ErrTruncatedVarint)

	_, _, err = decoder.Search([]byte{5, 0x80}, 2, 100)
	require.ErrorIs(t, err, errs.ErrTruncatedVarint)

	_, _, err = decoder.Search([]byte{0xff, 0xff, 0xff, 0xff, 0x7f}, 1, 5)
	require.ErrorIs(t, err, errs.ErrVarintOverflow)
}

func TestValueDeltaEncoder_Reset(t *testing.T) {
	encoder := NewValueDeltaEncoder()
	defer encoder.Finish()

	encoder.WriteSlice([]uint32{100, 200})
	require.Equal(t, 2, encoder.Len())

	encoder.Reset()
	require.Equal(t, 0, encoder.Len())
	require.Equal(t, 0, encoder.Size())

	// After Reset the first write is absolute again.
	encoder.Write(3)
	require.Equal(t, []byte{3}, encoder.Bytes())
}
