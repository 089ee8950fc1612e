package sorting

// MergeSort returns a new slice holding the elements of xs in ascending
// order. xs itself is not modified.
func MergeSort(xs []int) []int {
	if len(xs) <= 1 {
		return append([]int(nil), xs...)
	}
	mid := len(xs) / 2

	return merge(MergeSort(xs[:mid]), MergeSort(xs[mid:]))
}

// merge combines two ascending runs; on ties the left run wins.
func merge(left, right []int) []int {
	out := make([]int, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if right[j] < left[i] {
			out = append(out, right[j])
			j++
		} else {
			out = append(out, left[i])
			i++
		}
	}
	out = append(out, left[i:]...)

	return append(out, right[j:]...)
}
