package bsearch

import "fmt"

// SmallestDivisor returns the smallest positive d such that
// Σ ceil(x/d) over nums is ≤ threshold.
//
// Preconditions, reported as errors rather than clamped:
//   - nums is non-empty (ErrEmptyInput);
//   - every element is > 0 (ErrNonPositive);
//   - threshold ≥ len(nums) (ErrThresholdTooSmall).
//
// Under those, d = max(nums) always fits, so the search range is [1, max(nums)].
func SmallestDivisor(nums []int, threshold int) (int, error) {
	if len(nums) == 0 {
		return 0, ErrEmptyInput
	}
	if threshold < len(nums) {
		return 0, fmt.Errorf("%w: threshold %d, %d elements", ErrThresholdTooSmall, threshold, len(nums))
	}
	hi := 0
	for i, x := range nums {
		if x <= 0 {
			return 0, fmt.Errorf("%w: nums[%d] = %d", ErrNonPositive, i, x)
		}
		hi = max(hi, x)
	}

	// sum never exceeds threshold, so threshold-sum cannot overflow
	fits := func(d int) bool {
		sum := 0
		for _, x := range nums {
			part := (x-1)/d + 1
			if part > threshold-sum {
				return false
			}
			sum += part
		}
		return true
	}

	return FirstTrue(1, hi, fits), nil
}
