package topo

import (
	"errors"
	"fmt"
)

// VertexState represents the DFS visitation state of a node.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the current DFS path.
	Black        // Black: the node and all its descendants are fully explored.
)

var (
	// ErrNegativeCount is returned when the node count is negative.
	ErrNegativeCount = errors.New("topo: node count must be non-negative")

	// ErrNodeOutOfRange is returned when a prerequisite names a node outside [0, num).
	ErrNodeOutOfRange = errors.New("topo: node out of range")

	// ErrCycleDetected indicates that no topological order exists.
	ErrCycleDetected = errors.New("topo: cycle detected")
)

// Prereq states that Requires must be completed before Course.
type Prereq struct {
	Course, Requires int
}

// graph is the adjacency form shared by Kahn's sweep and the cycle search.
type graph struct {
	succ  [][]int // succ[b] lists every a with an edge b → a, in input order
	indeg []int
}

// build validates num and every edge, then returns the adjacency lists.
func build(num int, prereqs []Prereq) (*graph, error) {
	if num < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, num)
	}
	g := &graph{
		succ:  make([][]int, num),
		indeg: make([]int, num),
	}
	for i, p := range prereqs {
		if p.Course < 0 || p.Course >= num || p.Requires < 0 || p.Requires >= num {
			return nil, fmt.Errorf("%w: prereqs[%d] = (%d, %d) with %d nodes",
				ErrNodeOutOfRange, i, p.Course, p.Requires, num)
		}
		g.succ[p.Requires] = append(g.succ[p.Requires], p.Course)
		g.indeg[p.Course]++
	}

	return g, nil
}
