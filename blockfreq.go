// Package blockfreq provides a compact, cost-gated secondary index that
// answers "how many rows in this block equal value V?" without scanning the
// block.
//
// It targets columnar storage engines that want cheap per-block equality
// frequency answers and must decide per block whether such an index is worth
// its storage, given the relative costs of scan access versus storage.
//
// # Core Features
//
//   - Frequency counting over a block of uint32 values
//   - Compact binary layout: sorted delta-varint distinct values plus a
//     hybrid bitmap/varint counts section
//   - A cost-benefit gate that rejects indexes not worth persisting
//   - Bounds-checked queries resolving a predicate to Absent or Found(count)
//   - Optional checksummed, compressed envelope for storage round trips
//
// # Basic Usage
//
// Building and querying an index for one block:
//
//	import "github.com/arloliu/blockfreq"
//
//	cost := blockfreq.CostConfig{AccessCost: 4, StorageCost: 1}
//	result, _ := blockfreq.Build(segment, cost)
//	if result.Rejected {
//	    // Index larger than its break-even budget; fall back to scanning.
//	    return
//	}
//
//	res, _ := blockfreq.Query(result.Index, 42)
//	switch res.Status {
//	case blockfreq.LookupFound:
//	    fmt.Printf("42 occurs %d times\n", res.Count)
//	case blockfreq.LookupAbsent:
//	    fmt.Println("42 not in block")
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the index
// package, which holds the builder, query path, cost model, and envelope.
// The encoding and section packages expose the underlying codecs and header
// layout for advanced use.
package blockfreq

import (
	"github.com/arloliu/blockfreq/format"
	"github.com/arloliu/blockfreq/index"
)

// Re-exported types for the common path, so simple callers only import the
// root package.
type (
	// CostConfig carries the access and storage cost units.
	CostConfig = index.CostConfig
	// BuildResult is the outcome of building an index for one segment.
	BuildResult = index.BuildResult
	// LookupResult is the outcome of resolving one predicate value.
	LookupResult = index.LookupResult
	// LookupStatus classifies the outcome of a frequency lookup.
	LookupStatus = index.LookupStatus
)

// Lookup outcomes.
const (
	LookupNoIndex = index.LookupNoIndex
	LookupAbsent  = index.LookupAbsent
	LookupFound   = index.LookupFound
)

// Build builds a frequency index for one segment using the given cost units
// and the default per-block query rate.
//
// For repeated builds, or to override the query rate or envelope compression,
// construct an index.Builder directly.
func Build(segment []uint32, cost CostConfig, opts ...index.BuilderOption) (BuildResult, error) {
	builder, err := index.NewBuilder(cost, opts...)
	if err != nil {
		return BuildResult{}, err
	}

	return builder.Build(segment), nil
}

// Query resolves the frequency of predicate in a previously built index
// buffer. A nil buffer is the explicit "no index" marker.
func Query(indexBuf []byte, predicate uint32) (LookupResult, error) {
	return index.Query(indexBuf, predicate)
}

// Seal wraps an accepted index buffer in a checksummed persistence envelope.
func Seal(indexBuf []byte, compression format.CompressionType) ([]byte, error) {
	return index.Seal(indexBuf, compression)
}

// Open validates a sealed envelope and returns the raw index buffer.
func Open(sealed []byte) ([]byte, error) {
	return index.Open(sealed)
}
