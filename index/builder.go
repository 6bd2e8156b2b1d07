package index

import (
	"cmp"
	"slices"

	"github.com/arloliu/blockfreq/encoding"
	"github.com/arloliu/blockfreq/errs"
	"github.com/arloliu/blockfreq/format"
	"github.com/arloliu/blockfreq/internal/options"
	"github.com/arloliu/blockfreq/section"
)

// BuilderOption configures a Builder.
type BuilderOption = options.Option[*Builder]

// WithQueriesPerBlock overrides the assumed per-block query rate used by the
// cost model. Returns errs.ErrInvalidQueryRate for non-positive rates.
func WithQueriesPerBlock(rate float64) BuilderOption {
	return options.New(func(b *Builder) error {
		if rate <= 0 {
			return errs.ErrInvalidQueryRate
		}
		b.queriesPerBlock = rate

		return nil
	})
}

// WithCompression sets the compression applied by Seal. It has no effect on
// the index encoding or the cost gate, which always sees the uncompressed
// size. Returns errs.ErrInvalidCompressionType for unknown types.
func WithCompression(compression format.CompressionType) BuilderOption {
	return options.New(func(b *Builder) error {
		switch compression {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			b.compression = compression
			return nil
		default:
			return errs.ErrInvalidCompressionType
		}
	})
}

// Builder builds frequency indexes for column block segments.
//
// A Builder is configured once and reused across blocks; each Build call owns
// its working state, so a single Builder may be used from multiple goroutines.
type Builder struct {
	cost            CostModel
	queriesPerBlock float64
	compression     format.CompressionType
}

// NewBuilder creates a Builder with the given cost units and options.
func NewBuilder(cost CostConfig, opts ...BuilderOption) (*Builder, error) {
	b := &Builder{
		queriesPerBlock: DefaultQueriesPerBlock,
		compression:     format.CompressionNone,
	}

	if err := options.Apply(b, opts...); err != nil {
		return nil, err
	}

	model, err := NewCostModel(cost, b.queriesPerBlock)
	if err != nil {
		return nil, err
	}
	b.cost = model

	return b, nil
}

// CostModel returns the cost model the builder gates with.
func (b *Builder) CostModel() CostModel {
	return b.cost
}

// BuildResult is the outcome of building an index for one segment.
//
// Rejected reports the cost-gate decision; Index is nil if and only if the
// build was rejected. An empty segment yields an accepted 8-byte header-only
// buffer (unless the cost gate rejects it), which is a different outcome from
// a rejection.
type BuildResult struct {
	// Index is the persistable buffer. Ownership transfers to the caller.
	// Nil when Rejected.
	Index []byte
	// EncodedSize is the encoded buffer size in bytes, reported even when
	// the buffer was rejected.
	EncodedSize int
	// BreakEvenBytes is the storage budget the size was gated against.
	BreakEvenBytes float64
	// Rejected is true when the cost gate declined to persist the index.
	Rejected bool
}

// Accepted reports whether the build produced a persistable index.
func (r BuildResult) Accepted() bool {
	return !r.Rejected
}

// valueCount is one entry of the materialized frequency table.
type valueCount struct {
	value uint32
	count uint32
}

// Build tallies the segment, encodes the index buffer, and applies the cost
// gate.
//
// Build cannot fail on any input: every segment, including an empty one, has
// a well-defined encoding. The returned buffer layout is deterministic for a
// given multiset of values regardless of segment order.
func (b *Builder) Build(segment []uint32) BuildResult {
	items := sortedItems(buildFrequencyTable(segment))

	valueEnc := encoding.NewValueDeltaEncoder()
	defer valueEnc.Finish()
	countEnc := encoding.NewCountEncoder()
	defer countEnc.Finish()

	for _, it := range items {
		valueEnc.Write(it.value)
		countEnc.Write(it.count)
	}

	header := section.NewIndexHeader(uint32(len(items)), valueEnc.Size()) //nolint:gosec

	total := section.HeaderSize + valueEnc.Size() + countEnc.Size()
	buf := make([]byte, 0, total)
	buf = header.AppendTo(buf)
	buf = append(buf, valueEnc.Bytes()...)
	buf = append(buf, countEnc.Bytes()...)

	result := BuildResult{
		EncodedSize:    len(buf),
		BreakEvenBytes: b.cost.BreakEvenBytes(),
	}

	if !b.cost.Accept(len(buf)) {
		result.Rejected = true
		return result
	}

	result.Index = buf

	return result
}

// buildFrequencyTable tallies the occurrences of each distinct value in the
// segment. Absent values never appear as entries, so every count is >= 1.
func buildFrequencyTable(segment []uint32) map[uint32]uint32 {
	table := make(map[uint32]uint32, len(segment))
	for _, v := range segment {
		table[v]++
	}

	return table
}

// sortedItems materializes the frequency table in ascending value order.
//
// Map iteration order is nondeterministic; this explicit sort is the only
// source of determinism in the encoded output and must stay a hard step so
// the same multiset of values always produces byte-identical buffers.
func sortedItems(table map[uint32]uint32) []valueCount {
	items := make([]valueCount, 0, len(table))
	for value, count := range table {
		items = append(items, valueCount{value: value, count: count})
	}

	slices.SortFunc(items, func(a, b valueCount) int {
		return cmp.Compare(a.value, b.value)
	})

	return items
}
