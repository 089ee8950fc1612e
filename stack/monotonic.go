package stack

// NextGreater returns, for every position i, the first value to the right
// of nums[i] that is strictly greater than it, or -1 if there is none.
// Equal values do not resolve each other.
func NextGreater(nums []int) []int {
	res := make([]int, len(nums))
	for i := range res {
		res[i] = -1
	}

	pending := make([]int, 0, len(nums)) // indices, values non-increasing bottom→top
	for i, x := range nums {
		for len(pending) > 0 && nums[pending[len(pending)-1]] < x {
			res[pending[len(pending)-1]] = x
			pending = pending[:len(pending)-1]
		}
		pending = append(pending, i)
	}

	return res
}
