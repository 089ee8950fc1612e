package gridgraph

import "fmt"

var (
	offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input so later changes by the caller are not seen.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}
	cells := make([][]int, rows)
	for r := range values {
		cells[r] = make([]int, cols)
		copy(cells[r], values[r])
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Rows:            rows,
		Cols:            cols,
		Conn:            opts.Conn,
		cells:           cells,
		neighborOffsets: offsets,
	}, nil
}

// From2D is shorthand for NewGridGraph with only the connectivity set.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	return NewGridGraph(values, GridOptions{Conn: conn})
}

// InBounds reports whether p lies within the grid boundaries.
func (gg *GridGraph) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < gg.Rows && p.Col >= 0 && p.Col < gg.Cols
}

// IsFree reports whether p is inside the grid and holds Free.
func (gg *GridGraph) IsFree(p Point) bool {
	return gg.InBounds(p) && gg.cells[p.Row][p.Col] == Free
}

// Value returns the original value stored at p. p must be in bounds.
func (gg *GridGraph) Value(p Point) int {
	return gg.cells[p.Row][p.Col]
}

// index maps p to a row-major index: Row*Cols + Col.
func (gg *GridGraph) index(p Point) int {
	return p.Row*gg.Cols + p.Col
}

// point converts a row-major index back to a Point.
func (gg *GridGraph) point(idx int) Point {
	return Point{Row: idx / gg.Cols, Col: idx % gg.Cols}
}

// checkBounds wraps ErrOutOfBounds with the offending role and cell.
func (gg *GridGraph) checkBounds(role string, p Point) error {
	if !gg.InBounds(p) {
		return fmt.Errorf("%w: %s %v in %dx%d grid", ErrOutOfBounds, role, p, gg.Rows, gg.Cols)
	}

	return nil
}

// checkEndpoint requires p to be in bounds and free.
func (gg *GridGraph) checkEndpoint(role string, p Point) error {
	if err := gg.checkBounds(role, p); err != nil {
		return err
	}
	if !gg.IsFree(p) {
		return fmt.Errorf("%w: %s %v holds %d", ErrBlockedCell, role, p, gg.Value(p))
	}

	return nil
}
