// Package patterns is a small catalogue of the classic interview-grade
// algorithm patterns, one package per pattern, each a pure function over
// plain Go values.
//
// 🚀 What is inside?
//
//	lookup/     hash-map pair search (two-sum)
//	window/     sliding window: longest substring without repeats
//	intervals/  sort-then-sweep merging, min-heap overlap counting
//	stack/      bracket balancing, monotonic next-greater
//	bsearch/    binary search, lower/upper bounds, answer-space search
//	gridgraph/  BFS shortest paths, routes and components on 0/1 grids
//	topo/       Kahn topological order, DFS cycle extraction
//	sorting/    stable top-down merge sort
//
// ✨ Guarantees
//
//   - Inputs are never mutated; results are freshly allocated.
//   - Absence is data (false, -1, nil); only broken preconditions are errors.
//   - Errors are package-prefixed sentinels; test them with errors.Is.
//   - No package logs, locks or spawns goroutines; all are safe for concurrent use.
//
// The drill command (cmd/drill) runs YAML casebooks of literal vectors
// against every package:
//
//	go run ./cmd/drill run               # built-in tutorial casebook
//	go run ./cmd/drill run my.yaml --format json
//	go run ./cmd/drill ops
package patterns
