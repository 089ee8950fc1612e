// Package intervals merges closed integer intervals and counts how many of
// them are simultaneously active.
//
// What
//
//   - Merge: sort by (Start, End), then sweep, folding every interval whose
//     Start is ≤ the running End into the current one. The result is sorted,
//     pairwise disjoint, and covers exactly the union of the input.
//   - MinOverlapCount: the "meeting rooms" count. Sort by Start and keep a
//     min-heap of active End values; an interval ending at t frees its slot
//     for an interval starting at t.
//
// Input ownership
//
//	Both functions sort a private copy. The caller's slice keeps its order,
//	so concurrent calls over the same read-only input are safe.
//
// Complexity (n = len(in))
//
//   - Merge:           O(n log n) time, O(n) memory.
//   - MinOverlapCount: O(n log n) time, O(n) memory for the heap.
//
// Intervals are expected to satisfy Start ≤ End (see Interval.Valid).
package intervals
