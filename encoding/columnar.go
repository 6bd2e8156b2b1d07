package encoding

import "iter"

// ColumnarEncoder is the common surface of the section encoders in this package.
//
// Encoders accumulate values into a pooled internal buffer. The slice returned
// by Bytes is valid until Reset or Finish; the caller must not modify it.
type ColumnarEncoder[T comparable] interface {
	// Write encodes a single value.
	Write(data T)

	// WriteSlice encodes a slice of values. Equivalent to calling Write for
	// each element, but allows encoders to size their buffers up front.
	WriteSlice(data []T)

	// Bytes returns the encoded section bytes accumulated so far.
	Bytes() []byte

	// Len returns the number of values written since the last Reset.
	Len() int

	// Size returns the encoded size in bytes of the section.
	Size() int

	// Reset clears all accumulated state and data, making the encoder ready
	// for a new section while retaining its buffers.
	Reset()

	// Finish returns pooled buffer resources. The encoder is unusable
	// afterwards; create a new instance to encode more data.
	Finish()
}

// ColumnarDecoder is the common surface of the section decoders in this package.
//
// Decoders are stateless; each call operates independently on the supplied
// section bytes and never mutates them.
type ColumnarDecoder[T comparable] interface {
	// All returns an iterator yielding every value in the section, in item
	// order. Iteration stops early on malformed data.
	All(data []byte, count int) iter.Seq[T]
}
