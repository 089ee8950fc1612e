package bsearch_test

import (
	"fmt"

	"github.com/katalvlaran/patterns/bsearch"
)

// ExampleBounds locates the run of 2s in a sorted slice.
func ExampleBounds() {
	xs := []int{1, 2, 2, 2, 5, 9}
	lo, hi := bsearch.Bounds(xs, 2)
	fmt.Println(lo, hi, bsearch.Search(xs, 5), bsearch.Search(xs, 7))

	// Output:
	// 1 4 4 -1
}

// ExampleSmallestDivisor searches the answer space instead of an array.
func ExampleSmallestDivisor() {
	d, err := bsearch.SmallestDivisor([]int{1, 2, 5, 9}, 6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(d)

	// Output:
	// 5
}
