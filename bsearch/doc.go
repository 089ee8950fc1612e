// Package bsearch provides binary search over sorted integer slices and over
// monotone predicates.
//
// What
//
//   - LowerBound / UpperBound: first index with xs[i] ≥ x / xs[i] > x.
//   - Bounds: both at once; for an absent x they coincide at the insertion point.
//   - Search: left-most index of target, or -1.
//   - FirstTrue: smallest v in [lo, hi] for which a monotone predicate holds.
//   - SmallestDivisor: smallest d ≥ 1 with Σ ceil(x/d) ≤ threshold, found by
//     FirstTrue over [1, max(nums)].
//
// Why a predicate search
//
//	Σ ceil(x/d) never increases as d grows, so "fits under threshold" is
//	false up to some d* and true from there on. FirstTrue narrows to d* in
//	O(log max) feasibility checks of O(n) each.
//
// Errors
//
//   - ErrEmptyInput         SmallestDivisor got no numbers.
//   - ErrNonPositive        SmallestDivisor got a value ≤ 0.
//   - ErrThresholdTooSmall  threshold < len(nums); every d gives a sum ≥ len(nums).
//
// Inputs to the index searches must be sorted ascending; results on unsorted
// input are unspecified.
package bsearch
