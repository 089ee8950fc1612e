package intervals

import "cmp"

// Interval is a closed range [Start, End] of integers.
type Interval struct {
	Start, End int
}

// Valid reports whether Start ≤ End.
func (iv Interval) Valid() bool {
	return iv.Start <= iv.End
}

// Overlaps reports whether iv and other share at least one point.
// Touching endpoints count, which is the rule Merge applies.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start <= other.End && other.Start <= iv.End
}

// compare orders intervals by Start, then End.
func compare(a, b Interval) int {
	if c := cmp.Compare(a.Start, b.Start); c != 0 {
		return c
	}

	return cmp.Compare(a.End, b.End)
}

// endHeap is a min-heap of interval End values for container/heap.
type endHeap []int

// Len returns the number of active ends.
func (h endHeap) Len() int { return len(h) }

// Less: the earliest end has the highest priority.
func (h endHeap) Less(i, j int) bool { return h[i] < h[j] }

// Swap swaps two elements in the heap.
func (h endHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds x, which must be an int.
func (h *endHeap) Push(x any) { *h = append(*h, x.(int)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (h *endHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}
