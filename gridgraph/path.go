package gridgraph

// ShortestPath returns the minimum number of 4-directional moves from start
// to goal through free cells of grid, or -1 if goal is unreachable.
// start == goal yields 0.
//
// The grid must be non-empty and rectangular, and both endpoints must be in
// bounds and free; violations return ErrEmptyGrid, ErrNonRectangular,
// ErrOutOfBounds or ErrBlockedCell instead of a distance.
func ShortestPath(grid [][]int, start, goal Point) (int, error) {
	gg, err := NewGridGraph(grid, DefaultGridOptions())
	if err != nil {
		return -1, err
	}

	return gg.ShortestPath(start, goal)
}

// ShortestPath returns the fewest moves from start to goal under gg.Conn,
// or -1 if goal is unreachable. See the package-level ShortestPath for the
// error contract.
func (gg *GridGraph) ShortestPath(start, goal Point) (int, error) {
	w, err := gg.search(start, goal)
	if err != nil {
		return -1, err
	}
	if w.target < 0 {
		return -1, nil
	}

	return w.depth[w.target], nil
}

// Route returns one shortest sequence of cells from start to goal, both
// included. It returns ErrNoPath if goal is unreachable.
// Among equally short routes the one found first in neighbor order
// (up, right, down, left, then diagonals under Conn8) is returned.
func (gg *GridGraph) Route(start, goal Point) ([]Point, error) {
	w, err := gg.search(start, goal)
	if err != nil {
		return nil, err
	}
	if w.target < 0 {
		return nil, ErrNoPath
	}

	path := make([]Point, w.depth[w.target]+1)
	for i, at := len(path)-1, w.target; i >= 0; i, at = i-1, w.parent[at] {
		path[i] = gg.point(at)
	}

	return path, nil
}

// walker holds the state of one breadth-first search over cell indices.
type walker struct {
	gg     *GridGraph
	queue  []int
	depth  []int // -1 = not yet seen
	parent []int
	target int // index of goal once dequeued, else -1
}

// search validates the endpoints and runs BFS from start until goal is
// dequeued or the frontier is exhausted.
func (gg *GridGraph) search(start, goal Point) (*walker, error) {
	if err := gg.checkEndpoint("start", start); err != nil {
		return nil, err
	}
	if err := gg.checkEndpoint("goal", goal); err != nil {
		return nil, err
	}

	n := gg.Rows * gg.Cols
	w := &walker{
		gg:     gg,
		queue:  make([]int, 0, n),
		depth:  make([]int, n),
		parent: make([]int, n),
		target: -1,
	}
	for i := range w.depth {
		w.depth[i] = -1
		w.parent[i] = -1
	}
	w.enqueue(gg.index(start), 0, -1)
	w.loop(gg.index(goal))

	return w, nil
}

// enqueue marks idx seen at depth d with the given parent.
func (w *walker) enqueue(idx, d, parent int) {
	w.depth[idx] = d
	w.parent[idx] = parent
	w.queue = append(w.queue, idx)
}

// loop processes the queue in FIFO order; the head index avoids reslicing.
func (w *walker) loop(goal int) {
	for head := 0; head < len(w.queue); head++ {
		u := w.queue[head]
		if u == goal {
			w.target = u
			return
		}
		p := w.gg.point(u)
		for _, d := range w.gg.neighborOffsets {
			next := Point{Row: p.Row + d[0], Col: p.Col + d[1]}
			if !w.gg.IsFree(next) {
				continue
			}
			v := w.gg.index(next)
			if w.depth[v] < 0 {
				w.enqueue(v, w.depth[u]+1, u)
			}
		}
	}
}
