package gridgraph

// ConnectedComponents finds all contiguous regions of free cells under
// gg.Conn connectivity. Components are listed in row-major order of their
// first cell; cells inside a component are in BFS discovery order.
//
// Time:   O(R·C·d), where d = 4 or 8.
// Memory: O(R·C) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Point {
	seen := make([]bool, gg.Rows*gg.Cols)
	var comps [][]Point

	for r := 0; r < gg.Rows; r++ {
		for c := 0; c < gg.Cols; c++ {
			p0 := Point{Row: r, Col: c}
			i0 := gg.index(p0)
			if !gg.IsFree(p0) || seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			var comp []Point

			for qi := 0; qi < len(queue); qi++ {
				p := gg.point(queue[qi])
				comp = append(comp, p)
				for _, d := range gg.neighborOffsets {
					q := Point{Row: p.Row + d[0], Col: p.Col + d[1]}
					if !gg.IsFree(q) {
						continue
					}
					if vi := gg.index(q); !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}
