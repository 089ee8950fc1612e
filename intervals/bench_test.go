package intervals_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/patterns/intervals"
)

// BenchmarkMerge measures Merge on 10k random intervals.
func BenchmarkMerge(b *testing.B) {
	in := randomIntervals(rand.New(rand.NewSource(42)), 10000, 1000000, 200)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = intervals.Merge(in)
	}
}

// BenchmarkMinOverlapCount measures the heap sweep on 10k random intervals.
func BenchmarkMinOverlapCount(b *testing.B) {
	in := randomIntervals(rand.New(rand.NewSource(42)), 10000, 1000000, 200)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = intervals.MinOverlapCount(in)
	}
}
