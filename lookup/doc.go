// Package lookup provides hash-indexed searches over integer sequences.
//
// What
//
//   - PairSum finds two positions i < j whose values add up to a target,
//     using a single left-to-right scan and a value → first-index map.
//
// Determinism
//
//	The map is written only after the complement check and never overwritten
//	for a value already recorded, so the first occurrence of a value wins.
//	The reported pair is the one with the smallest second index and, among
//	those, the smallest first index.
//
// Complexity (n = len(nums))
//
//   - Time:   O(n)
//   - Memory: O(n)
//
// Usage
//
//	p, ok := lookup.PairSum([]int{2, 7, 11, 15}, 9)
//	if !ok {
//		// no two values add up to 9
//	}
//	fmt.Println(p.I, p.J) // 0 1
package lookup
