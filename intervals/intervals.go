package intervals

import (
	"container/heap"
	"slices"
)

// sortedCopy returns the input ordered by (Start, End) without touching in.
func sortedCopy(in []Interval) []Interval {
	out := slices.Clone(in)
	slices.SortFunc(out, compare)

	return out
}

// Merge returns the minimal sorted set of disjoint intervals covering the
// same points as in. An interval starting at or before the running end is
// folded into it, so [1,4] and [4,5] become [1,5].
// Empty input yields an empty, non-nil slice.
func Merge(in []Interval) []Interval {
	if len(in) == 0 {
		return []Interval{}
	}
	sorted := sortedCopy(in)

	out := make([]Interval, 0, len(sorted))
	out = append(out, sorted[0])
	for _, iv := range sorted[1:] {
		last := &out[len(out)-1]
		if iv.Start > last.End {
			out = append(out, iv)
			continue
		}
		last.End = max(last.End, iv.End)
	}

	return out
}

// MinOverlapCount returns the largest number of intervals active at the
// same instant, i.e. the fewest rooms that can host every meeting.
// A meeting ending at t does not overlap one starting at t.
// Empty input yields 0.
func MinOverlapCount(in []Interval) int {
	if len(in) == 0 {
		return 0
	}
	sorted := sortedCopy(in)

	ends := make(endHeap, 0, len(sorted))
	heap.Init(&ends)
	for _, iv := range sorted {
		// at most one room is reclaimed per arrival; the heap never grows past the peak
		if ends.Len() > 0 && ends[0] <= iv.Start {
			heap.Pop(&ends)
		}
		heap.Push(&ends, iv.End)
	}

	return ends.Len()
}
