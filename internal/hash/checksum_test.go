package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	// xxHash64 reference value for empty input.
	require.Equal(t, uint64(0xef46db3751d8e999), Checksum(nil))

	a := Checksum([]byte{1, 2, 3})
	b := Checksum([]byte{1, 2, 3})
	c := Checksum([]byte{1, 2, 4})
	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
}
