// Package casebook loads YAML files of literal algorithm test vectors and
// runs them against the core packages.
//
// A casebook is a named list of cases. Each case names an operation, gives
// its input as a mapping, and states either the expected value (expect) or
// the expected error kind (error):
//
//	name: tutorial
//	cases:
//	  - name: two-sum basic
//	    op: pair_sum
//	    input: {nums: [2, 7, 11, 15], target: 9}
//	    expect: [0, 1]
//	  - name: divisor without numbers
//	    op: smallest_divisor
//	    input: {nums: [], threshold: 1}
//	    error: empty
//
// `expect: null` is a real expectation (for example "no pair"); leaving
// expect out entirely requires an error kind instead.
//
// The tutorial casebook is embedded and returned by Default.
package casebook
