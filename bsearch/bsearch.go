package bsearch

// FirstTrue returns the smallest v in [lo, hi] with pred(v) == true, assuming
// pred is monotone (false…false true…true) on that range. It returns hi+1
// when pred is false everywhere, and lo when lo > hi.
//
// hi is kept inclusive and the midpoint is taken on the unsigned distance,
// so any range of int is searched without overflow; only the all-false
// result hi+1 wraps, and only when hi == math.MaxInt.
func FirstTrue(lo, hi int, pred func(int) bool) int {
	if lo > hi {
		return lo
	}
	ans, found := hi, false
	for lo <= hi {
		mid := lo + int((uint(hi)-uint(lo))/2)
		if pred(mid) {
			ans, found = mid, true
			if mid == lo {
				break
			}
			hi = mid - 1
			continue
		}
		if mid == hi {
			break
		}
		lo = mid + 1
	}
	if !found {
		return ans + 1
	}

	return ans
}

// LowerBound returns the first index i with xs[i] ≥ x, or len(xs).
func LowerBound(xs []int, x int) int {
	return FirstTrue(0, len(xs)-1, func(i int) bool { return xs[i] >= x })
}

// UpperBound returns the first index i with xs[i] > x, or len(xs).
func UpperBound(xs []int, x int) int {
	return FirstTrue(0, len(xs)-1, func(i int) bool { return xs[i] > x })
}

// Bounds returns (LowerBound(xs, x), UpperBound(xs, x)): the half-open range
// of positions holding x. For an absent x both equal the insertion point.
func Bounds(xs []int, x int) (lower, upper int) {
	return LowerBound(xs, x), UpperBound(xs, x)
}

// Search returns the left-most index of target in the ascending slice xs,
// or -1 if target does not occur.
func Search(xs []int, target int) int {
	i := LowerBound(xs, target)
	if i < len(xs) && xs[i] == target {
		return i
	}

	return -1
}
