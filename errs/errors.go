// Package errs defines the sentinel errors shared across blockfreq packages.
//
// All errors are plain sentinel values so callers can match them with
// errors.Is after wrapping.
package errs

import "errors"

// Index buffer decode errors.
//
// A persisted index buffer may be read back after a storage round trip where
// corruption is possible, so every decode path validates bounds and reports
// one of these instead of reading past the buffer.
var (
	// ErrTruncatedHeader indicates the buffer is shorter than the fixed
	// 8-byte index header.
	ErrTruncatedHeader = errors.New("index header truncated")

	// ErrTruncatedVarint indicates a varint ran past the end of its section.
	ErrTruncatedVarint = errors.New("varint truncated")

	// ErrVarintOverflow indicates a varint encodes a value that does not fit
	// in 32 bits, or uses more than the maximum 5 bytes.
	ErrVarintOverflow = errors.New("varint overflows 32 bits")

	// ErrOffsetOutOfRange indicates the header's counts offset points outside
	// the buffer or before the end of the header.
	ErrOffsetOutOfRange = errors.New("counts offset out of range")

	// ErrBitmapLengthMismatch indicates the counts section is too short to
	// hold the bitmap implied by the distinct-value count.
	ErrBitmapLengthMismatch = errors.New("bitmap length mismatch")
)

// Envelope errors, reported by index.Open when a sealed buffer fails
// validation.
var (
	// ErrInvalidMagic indicates the envelope does not start with the
	// blockfreq magic number.
	ErrInvalidMagic = errors.New("invalid envelope magic number")

	// ErrInvalidEnvelope indicates the envelope is shorter than its fixed
	// header or is otherwise structurally invalid.
	ErrInvalidEnvelope = errors.New("invalid envelope")

	// ErrChecksumMismatch indicates the payload checksum does not match the
	// checksum recorded in the envelope header.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")

	// ErrInvalidCompressionType indicates an unknown compression type in the
	// envelope flags or builder options.
	ErrInvalidCompressionType = errors.New("invalid compression type")
)

// Builder configuration errors.
var (
	// ErrInvalidCostUnit indicates a non-positive access or storage cost.
	ErrInvalidCostUnit = errors.New("cost unit must be positive")

	// ErrInvalidQueryRate indicates a non-positive queries-per-block rate.
	ErrInvalidQueryRate = errors.New("queries per block must be positive")
)
