package topo

// CanFinish reports whether all num nodes can be ordered so that every
// prerequisite precedes its course, i.e. whether the graph is acyclic.
// A cycle yields (false, nil); malformed input yields an error.
func CanFinish(num int, prereqs []Prereq) (bool, error) {
	g, err := build(num, prereqs)
	if err != nil {
		return false, err
	}

	return len(g.kahn()) == num, nil
}

// Order returns a topological order of 0..num-1, or ErrCycleDetected.
// Ties are broken by seeding the queue in ascending id order and releasing
// successors in prerequisite input order.
func Order(num int, prereqs []Prereq) ([]int, error) {
	g, err := build(num, prereqs)
	if err != nil {
		return nil, err
	}
	order := g.kahn()
	if len(order) != num {
		return nil, ErrCycleDetected
	}

	return order, nil
}

// kahn consumes g.indeg and returns every node it could process; on a
// cyclic graph the result is shorter than the node count.
func (g *graph) kahn() []int {
	n := len(g.indeg)
	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if g.indeg[v] == 0 {
			queue = append(queue, v)
		}
	}
	// the queue itself becomes the order: head marks what has been processed
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, v := range g.succ[u] {
			g.indeg[v]--
			if g.indeg[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	return queue
}
