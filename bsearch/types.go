package bsearch

import "errors"

// Sentinel errors for SmallestDivisor preconditions.
var (
	// ErrEmptyInput is returned when nums has no elements.
	ErrEmptyInput = errors.New("bsearch: input must be non-empty")

	// ErrNonPositive is returned when an element of nums is ≤ 0.
	ErrNonPositive = errors.New("bsearch: all values must be positive")

	// ErrThresholdTooSmall is returned when no divisor can satisfy the threshold.
	ErrThresholdTooSmall = errors.New("bsearch: threshold is below the number of elements")
)
