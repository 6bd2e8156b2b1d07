package index

import (
	"math/rand"
	"testing"
)

func benchSegment(size int, cardinality int) []uint32 {
	rng := rand.New(rand.NewSource(1))
	segment := make([]uint32, size)
	for i := range segment {
		segment[i] = uint32(rng.Intn(cardinality))
	}

	return segment
}

func BenchmarkBuilder_Build(b *testing.B) {
	builder, err := NewBuilder(CostConfig{AccessCost: 4, StorageCost: 1})
	if err != nil {
		b.Fatal(err)
	}
	segment := benchSegment(8192, 1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result := builder.Build(segment)
		if result.Rejected {
			b.Fatal("unexpected rejection")
		}
	}
}

func BenchmarkQuery(b *testing.B) {
	builder, err := NewBuilder(CostConfig{AccessCost: 4, StorageCost: 1})
	if err != nil {
		b.Fatal(err)
	}
	segment := benchSegment(8192, 1024)
	result := builder.Build(segment)
	if result.Rejected {
		b.Fatal("unexpected rejection")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Query(result.Index, uint32(i%2048)); err != nil {
			b.Fatal(err)
		}
	}
}
