package window

// LongestUniqueLength returns the length of the longest substring of s
// without a repeated character. The empty string yields 0.
func LongestUniqueLength(s string) int {
	return LongestUnique(s).Len()
}

// LongestUnique returns the left-most longest span of s whose characters
// are pairwise distinct. For the empty string it returns the zero Span.
func LongestUnique(s string) Span {
	var (
		best  Span
		left  int
		right int
	)
	last := make(map[rune]int)
	for _, ch := range s {
		if prev, ok := last[ch]; ok && prev >= left {
			left = prev + 1
		}
		last[ch] = right
		right++
		// strict: ties keep the earlier window
		if right-left > best.Len() {
			best = Span{Start: left, End: right}
		}
	}

	return best
}
