// Package index builds and queries compact per-block frequency indexes.
//
// A frequency index answers "how many rows in this block equal value V?"
// without scanning the block. Building is a one-shot pipeline over a segment
// of uint32 values:
//
//	segment -> frequency tally -> ascending sort -> delta-varint value section
//	        -> bitmap/varint counts section -> header -> cost gate
//
// The cost gate may reject the encoded buffer as not worth its storage, in
// which case the BuildResult carries no index at all. A rejected build is a
// distinct outcome from the valid header-only index of an empty segment; the
// two are never conflated through an empty-slice sentinel.
//
// Accepted buffers are immutable and safe for concurrent read-only queries.
// For storage round trips, Seal wraps a buffer with a checksummed, optionally
// compressed envelope that Open validates on the way back in.
package index
