package lookup

// PairSum returns the first pair of positions (i, j), i < j, such that
// nums[i]+nums[j] == target. "First" means smallest j, then smallest i.
// ok is false when no such pair exists; the returned Pair is then zero.
//
// Sums are exact: a pair that only reaches target through int wraparound
// is not reported.
func PairSum(nums []int, target int) (p Pair, ok bool) {
	seen := make(map[int]int, len(nums))
	for j, x := range nums {
		if need, fits := complement(target, x); fits {
			if i, found := seen[need]; found {
				return Pair{I: i, J: j}, true
			}
		}
		// keep the earliest index for repeated values
		if _, dup := seen[x]; !dup {
			seen[x] = j
		}
	}

	return Pair{}, false
}

// complement returns target-x and whether it is representable as an int.
func complement(target, x int) (int, bool) {
	need := target - x
	if (x > 0 && need > target) || (x < 0 && need < target) {
		return 0, false
	}

	return need, true
}
