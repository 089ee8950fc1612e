package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patterns/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"NilGrid", nil, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, gridgraph.DefaultGridOptions())
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewGridGraph_DeepCopy ensures later edits to the input are not observed.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	grid := [][]int{{0, 0}, {0, 0}}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)

	grid[0][1] = 1
	assert.True(t, gg.IsFree(gridgraph.Point{Row: 0, Col: 1}))
	assert.Equal(t, 0, gg.Value(gridgraph.Point{Row: 0, Col: 1}))
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{0, 1, 0}, {1, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)

	for _, p := range []gridgraph.Point{{Row: 0, Col: 0}, {Row: 1, Col: 2}, {Row: 1, Col: 1}} {
		assert.True(t, gg.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []gridgraph.Point{{Row: -1, Col: 0}, {Row: 0, Col: 3}, {Row: 2, Col: 1}, {Row: 1, Col: -1}} {
		assert.False(t, gg.InBounds(p), "InBounds(%v)", p)
	}
}
