// Package gridgraph defines core types, options, and sentinel errors
// for grid path queries.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a start or goal cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrBlockedCell indicates a start or goal cell that is not free.
	ErrBlockedCell = errors.New("gridgraph: cell is blocked")
	// ErrNoPath indicates the goal is unreachable from the start.
	ErrNoPath = errors.New("gridgraph: no path between cells")
)

// Free is the only cell value that can be walked through.
const Free = 0

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: up, right, down, left.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

// Point addresses a cell by row and column.
type Point struct {
	Row, Col int
}

// String renders p as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions{Conn: Conn4}.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// cells[r][c] holds the original input value; neighborOffsets is precomputed
// as (dRow, dCol) pairs from Conn.
type GridGraph struct {
	Rows, Cols      int
	Conn            Connectivity
	cells           [][]int
	neighborOffsets [][2]int
}
