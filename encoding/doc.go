// Package encoding provides the low-level codecs behind the blockfreq index format.
//
// Three codecs cooperate to produce the persisted index layout:
//
//   - Uvarint32/AppendUvarint32: little-endian base-128 varints for uint32,
//     at most 5 bytes per value, with bounds-checked decoding.
//   - ValueDeltaEncoder/ValueDeltaDecoder: sorted distinct values stored as a
//     first absolute value followed by strictly positive deltas, one varint each.
//   - CountEncoder/CountDecoder: per-item occurrence counts stored as a hybrid
//     bitmap/varint section (bit set means count 1, cleared bits contribute a
//     varint residual of count-2).
//
// Most users should use the high-level index package instead, which assembles
// these sections with the fixed header and applies the cost gate. Use this
// package directly only when building custom index layouts or tooling that
// inspects raw sections.
//
// Decoders never read past the supplied slice: a truncated or overlong varint
// is reported through the sentinel errors in the errs package rather than by
// panicking, since persisted buffers can come back corrupted from storage.
package encoding
