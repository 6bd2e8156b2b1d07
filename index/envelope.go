package index

import (
	"github.com/arloliu/blockfreq/compress"
	"github.com/arloliu/blockfreq/endian"
	"github.com/arloliu/blockfreq/errs"
	"github.com/arloliu/blockfreq/format"
	"github.com/arloliu/blockfreq/internal/hash"
)

// Envelope layout for sealed index buffers:
//
//	offset 0:  magic    (uint16, little-endian)
//	offset 2:  flags    (uint8, low nibble holds the compression type)
//	offset 3:  reserved (uint8, zero)
//	offset 4:  checksum (uint64, little-endian, xxHash64 of the raw index)
//	offset 12: payload  (index buffer, compressed per the flags)
const (
	// EnvelopeMagic identifies a sealed blockfreq index.
	EnvelopeMagic uint16 = 0xFB10

	// EnvelopeHeaderSize is the fixed envelope header size in bytes.
	EnvelopeHeaderSize = 12

	envelopeMagicOffset    = 0
	envelopeFlagsOffset    = 2
	envelopeChecksumOffset = 4

	envelopeCompressionMask = 0x0f
)

var engine = endian.GetLittleEndianEngine()

// Seal wraps an accepted index buffer in a persistence envelope: magic,
// compression flags, an xxHash64 checksum of the raw buffer, and the payload
// compressed with the given codec.
//
// The checksum always covers the uncompressed index, so Open detects
// corruption of either the payload or the compression framing. Sealing does
// not alter the index encoding; callers that trust their storage path can
// persist BuildResult.Index directly and skip the envelope.
func Seal(index []byte, compression format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, errs.ErrInvalidCompressionType
	}

	payload, err := codec.Compress(index)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, EnvelopeHeaderSize+len(payload))
	buf = engine.AppendUint16(buf, EnvelopeMagic)
	buf = append(buf, byte(compression), 0)
	buf = engine.AppendUint64(buf, hash.Checksum(index))
	buf = append(buf, payload...)

	return buf, nil
}

// Seal wraps an accepted index buffer using the compression configured on the
// builder via WithCompression.
func (b *Builder) Seal(index []byte) ([]byte, error) {
	return Seal(index, b.compression)
}

// Open validates a sealed envelope and returns the raw index buffer.
//
// Returns errs.ErrInvalidEnvelope for a short buffer, errs.ErrInvalidMagic
// for a foreign one, errs.ErrInvalidCompressionType for unknown flags, and
// errs.ErrChecksumMismatch when the payload does not hash to the recorded
// checksum.
func Open(sealed []byte) ([]byte, error) {
	if len(sealed) < EnvelopeHeaderSize {
		return nil, errs.ErrInvalidEnvelope
	}

	if engine.Uint16(sealed[envelopeMagicOffset:]) != EnvelopeMagic {
		return nil, errs.ErrInvalidMagic
	}

	compression := format.CompressionType(sealed[envelopeFlagsOffset] & envelopeCompressionMask)
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, errs.ErrInvalidCompressionType
	}

	payload, err := codec.Decompress(sealed[EnvelopeHeaderSize:])
	if err != nil {
		return nil, err
	}

	if hash.Checksum(payload) != engine.Uint64(sealed[envelopeChecksumOffset:]) {
		return nil, errs.ErrChecksumMismatch
	}

	return payload, nil
}
