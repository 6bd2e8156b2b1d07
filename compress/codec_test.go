package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/blockfreq/format"
)

func testPayload() []byte {
	// Delta/varint-packed index-like data with some repetition.
	var buf bytes.Buffer
	for i := 0; i < 200; i++ {
		buf.Write([]byte{0x05, 0x02, 0x02, 0x04, 0x01, 0x00, byte(i)})
	}

	return buf.Bytes()
}

func TestGetCodec(t *testing.T) {
	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compression)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0))
	require.Error(t, err)
	_, err = GetCodec(format.CompressionType(0x0f))
	require.Error(t, err)
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := testPayload()

	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			codec, err := GetCodec(compression)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, decompressed)
		})
	}
}

func TestNoOpCompressor_Bypass(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := []byte{1, 2, 3}

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, compressed)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, decompressed)
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, compression := range []format.CompressionType{
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compression)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Nil(t, compressed)

		decompressed, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Nil(t, decompressed)
	}
}

func TestLZ4Compressor_CorruptedInput(t *testing.T) {
	codec := NewLZ4Compressor()

	// One literal followed by a zero match offset, which is never valid.
	_, err := codec.Decompress([]byte{0x10, 0x41, 0x00, 0x00})
	require.Error(t, err)
}
