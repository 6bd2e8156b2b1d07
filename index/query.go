package index

import (
	"github.com/arloliu/blockfreq/encoding"
	"github.com/arloliu/blockfreq/section"
)

// LookupStatus classifies the outcome of a frequency lookup.
type LookupStatus uint8

const (
	// LookupNoIndex means the caller supplied no index for the block.
	LookupNoIndex LookupStatus = iota
	// LookupAbsent means the value is not present in the block; its logical
	// frequency is 0.
	LookupAbsent
	// LookupFound means the value is present with the reported count.
	LookupFound
)

func (s LookupStatus) String() string {
	switch s {
	case LookupNoIndex:
		return "NoIndex"
	case LookupAbsent:
		return "Absent"
	case LookupFound:
		return "Found"
	default:
		return "Unknown"
	}
}

// LookupResult is the outcome of resolving one predicate value.
type LookupResult struct {
	// Status is the disjoint lookup outcome.
	Status LookupStatus
	// Count is the occurrence count; valid only when Status is LookupFound.
	Count uint32
}

// Query resolves the frequency of predicate in a previously accepted index
// buffer.
//
// Passing a nil buffer is the explicit "no index was built for this block"
// marker and yields LookupNoIndex. A non-nil but malformed buffer (including
// an empty one) is a decode error, never silently treated as missing.
//
// The lookup scans the delta-varint value section with a running sum and
// stops at the first value >= predicate: an exact match resolves the count
// through the bitmap/residual section, an overshoot proves absence without
// decoding the rest of the buffer.
//
// Query never mutates the buffer and is safe to call concurrently on a
// shared index.
func Query(index []byte, predicate uint32) (LookupResult, error) {
	if index == nil {
		return LookupResult{Status: LookupNoIndex}, nil
	}

	header, err := section.ParseIndexHeader(index)
	if err != nil {
		return LookupResult{}, err
	}

	numDistinct := int(header.NumDistinct)
	valueSection := index[section.HeaderSize:header.CountsOffset]

	valueDec := encoding.NewValueDeltaDecoder()
	itemIdx, found, err := valueDec.Search(valueSection, numDistinct, predicate)
	if err != nil {
		return LookupResult{}, err
	}
	if !found {
		return LookupResult{Status: LookupAbsent}, nil
	}

	countDec := encoding.NewCountDecoder()
	count, err := countDec.At(index[header.CountsOffset:], itemIdx, numDistinct)
	if err != nil {
		return LookupResult{}, err
	}

	return LookupResult{Status: LookupFound, Count: count}, nil
}
