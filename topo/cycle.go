package topo

// FindCycle returns one directed cycle of the prerequisite graph as a
// closed sequence v0 → v1 → … → v0 (v0 repeated at the end), following
// edges Requires → Course. It returns nil when the graph is acyclic.
// Roots are tried in ascending id order, so the result is deterministic.
func FindCycle(num int, prereqs []Prereq) ([]int, error) {
	g, err := build(num, prereqs)
	if err != nil {
		return nil, err
	}
	f := &cycleFinder{
		g:     g,
		state: make([]int, num),
		path:  make([]int, 0, num),
	}
	for v := 0; v < num; v++ {
		if f.state[v] == White && f.visit(v) {
			return f.cycle, nil
		}
	}

	return nil, nil
}

// cycleFinder encapsulates state for one cycle search.
type cycleFinder struct {
	g     *graph
	state []int // White, Gray or Black per node
	path  []int // current DFS path
	cycle []int
}

// visit explores id and reports whether a back edge was found below it.
func (f *cycleFinder) visit(id int) bool {
	f.state[id] = Gray
	f.path = append(f.path, id)

	for _, next := range f.g.succ[id] {
		switch f.state[next] {
		case White:
			if f.visit(next) {
				return true
			}
		case Gray:
			// back edge id → next closes the path suffix starting at next
			for i := len(f.path) - 1; i >= 0; i-- {
				if f.path[i] == next {
					f.cycle = append(append([]int(nil), f.path[i:]...), next)
					return true
				}
			}
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.state[id] = Black

	return false
}
