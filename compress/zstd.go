package compress

// ZstdCompressor compresses envelope payloads with Zstandard.
//
// Zstd trades compression speed for ratio, making it the right choice when
// sealed indexes go to cold storage or cross a constrained network link and
// decompression happens infrequently.
//
// The implementation is selected at build time: with cgo available the
// valyala/gozstd bindings are used, otherwise the pure-Go
// klauspost/compress/zstd implementation.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
