// Package sorting holds a reference top-down merge sort.
//
// MergeSort splits the input in half, sorts each half recursively and
// merges the two runs, taking from the left run on ties so equal values
// keep their relative order (stable). It always returns a fresh slice.
//
// Complexity: O(n log n) time, O(n log n) allocations over the recursion.
package sorting
