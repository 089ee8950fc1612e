package stack_test

import (
	"fmt"

	"github.com/katalvlaran/patterns/stack"
)

// ExampleIsBalanced shows a nested, an interleaved and a noisy input.
func ExampleIsBalanced() {
	fmt.Println(stack.IsBalanced("([]){}"))
	fmt.Println(stack.IsBalanced("([)]"))
	fmt.Println(stack.IsBalanced("len(xs[i]) > 0"))

	// Output:
	// true
	// false
	// true
}

// ExampleNextGreater resolves each element against the nearest larger one on its right.
func ExampleNextGreater() {
	fmt.Println(stack.NextGreater([]int{2, 1, 2, 4, 3}))

	// Output:
	// [4 2 4 -1 -1]
}
