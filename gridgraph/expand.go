package gridgraph

import (
	"container/list"
	"math"
)

// MinWallBreaks returns the fewest blocked cells that must be cleared so
// that goal becomes reachable from start. Entering a blocked cell costs 1,
// entering a free cell costs 0, and a blocked start counts as one break.
// Endpoints must be in bounds (ErrOutOfBounds) but may be blocked.
//
// Behavior:
//  1. 0-1 BFS from start: cost-0 moves go to the deque front, cost-1 moves
//     to the back, so cells leave the deque in non-decreasing cost.
//  2. Stop when goal is popped.
//
// Complexity: O(R·C·d) time, O(R·C) memory.
func (gg *GridGraph) MinWallBreaks(start, goal Point) (int, error) {
	if err := gg.checkBounds("start", start); err != nil {
		return 0, err
	}
	if err := gg.checkBounds("goal", goal); err != nil {
		return 0, err
	}

	step := func(p Point) int {
		if gg.IsFree(p) {
			return 0
		}
		return 1
	}

	dist := make([]int, gg.Rows*gg.Cols)
	for i := range dist {
		dist[i] = math.MaxInt
	}
	src, dst := gg.index(start), gg.index(goal)
	dist[src] = step(start)

	dq := list.New()
	dq.PushFront(src)
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if u == dst {
			break
		}
		p := gg.point(u)
		for _, d := range gg.neighborOffsets {
			q := Point{Row: p.Row + d[0], Col: p.Col + d[1]}
			if !gg.InBounds(q) {
				continue
			}
			v, cost := gg.index(q), step(q)
			if nd := dist[u] + cost; nd < dist[v] {
				dist[v] = nd
				if cost == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// every in-bounds cell is reachable once walls may be broken
	return dist[dst], nil
}
