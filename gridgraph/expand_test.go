package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patterns/gridgraph"
)

// TestMinWallBreaks_Table covers open paths, single walls and blocked endpoints.
func TestMinWallBreaks_Table(t *testing.T) {
	cases := []struct {
		name        string
		grid        [][]int
		start, goal gridgraph.Point
		want        int
	}{
		{"AlreadyConnected", tutorialGrid, pt(0, 0), pt(2, 2), 0},
		{"BlockedGoal", tutorialGrid, pt(0, 0), pt(0, 2), 1},
		{"OneWall", [][]int{{0, 1, 0}}, pt(0, 0), pt(0, 2), 1},
		{"ThickWall", [][]int{{0, 1, 1, 0}}, pt(0, 0), pt(0, 3), 2},
		{"Detour", [][]int{
			{0, 1, 0},
			{0, 1, 0},
			{0, 0, 0},
		}, pt(0, 0), pt(0, 2), 0},
		{"BlockedStartSame", [][]int{{1}}, pt(0, 0), pt(0, 0), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gg, err := gridgraph.From2D(tc.grid, gridgraph.Conn4)
			require.NoError(t, err)
			got, err := gg.MinWallBreaks(tc.start, tc.goal)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestMinWallBreaks_OutOfBounds verifies bounds are still enforced.
func TestMinWallBreaks_OutOfBounds(t *testing.T) {
	gg, err := gridgraph.From2D(tutorialGrid, gridgraph.Conn4)
	require.NoError(t, err)
	_, err = gg.MinWallBreaks(pt(0, 0), pt(5, 0))
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}
