package topo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patterns/topo"
)

func edges(pairs ...[2]int) []topo.Prereq {
	out := make([]topo.Prereq, len(pairs))
	for i, p := range pairs {
		out[i] = topo.Prereq{Course: p[0], Requires: p[1]}
	}

	return out
}

// position returns index of v in order or -1 if not found.
func position(order []int, v int) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

// TestCanFinish_Table covers the reference vectors plus self-loops and isolated nodes.
func TestCanFinish_Table(t *testing.T) {
	cases := []struct {
		name    string
		num     int
		prereqs []topo.Prereq
		want    bool
	}{
		{"Chain", 2, edges([2]int{1, 0}), true},
		{"TwoCycle", 2, edges([2]int{1, 0}, [2]int{0, 1}), false},
		{"Diamond", 4, edges([2]int{1, 0}, [2]int{2, 0}, [2]int{3, 1}, [2]int{3, 2}), true},
		{"NoNodes", 0, nil, true},
		{"NoEdges", 3, nil, true},
		{"SelfLoop", 2, edges([2]int{1, 1}), false},
		{"CycleBehindDAG", 5, edges([2]int{1, 0}, [2]int{2, 1}, [2]int{3, 2}, [2]int{2, 3}, [2]int{4, 0}), false},
		{"DuplicateEdge", 2, edges([2]int{1, 0}, [2]int{1, 0}), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := topo.CanFinish(tc.num, tc.prereqs)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestCanFinish_Malformed verifies loud failures for bad counts and endpoints.
func TestCanFinish_Malformed(t *testing.T) {
	_, err := topo.CanFinish(-1, nil)
	assert.ErrorIs(t, err, topo.ErrNegativeCount)

	_, err = topo.CanFinish(2, edges([2]int{2, 0}))
	assert.ErrorIs(t, err, topo.ErrNodeOutOfRange)

	_, err = topo.CanFinish(2, edges([2]int{0, -1}))
	assert.ErrorIs(t, err, topo.ErrNodeOutOfRange)
}

// TestOrder_RespectsPrerequisites checks every edge against the returned order.
func TestOrder_RespectsPrerequisites(t *testing.T) {
	prereqs := edges([2]int{1, 0}, [2]int{2, 0}, [2]int{3, 1}, [2]int{3, 2}, [2]int{5, 4})
	order, err := topo.Order(6, prereqs)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5}, order)

	for _, p := range prereqs {
		assert.Less(t, position(order, p.Requires), position(order, p.Course), "%d must precede %d", p.Requires, p.Course)
	}
	assert.Equal(t, []int{0, 4, 1, 2, 5, 3}, order, "FIFO seeded by ascending id")
}

// TestOrder_Cycle returns ErrCycleDetected and no order.
func TestOrder_Cycle(t *testing.T) {
	order, err := topo.Order(3, edges([2]int{1, 0}, [2]int{2, 1}, [2]int{0, 2}))
	assert.Nil(t, order)
	assert.ErrorIs(t, err, topo.ErrCycleDetected)
}
