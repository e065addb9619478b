package terra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZigzagPath(t *testing.T) {
	cases := []struct {
		rows, cols int
		want       []int
	}{
		{1, 1, []int{0}},
		{1, 4, []int{0, 1, 2, 3}},
		{3, 3, []int{0, 1, 4, 5}},
		{2, 2, []int{0, 1}},
		{2, 5, []int{0, 1, 6, 7, 2, 3, 8, 9}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, zigzagPath(tc.rows, tc.cols),
			"%dx%d", tc.rows, tc.cols)
	}
}

// Consecutive path cells must be orthogonal neighbors or the carve
// would violate the river growth rule.
func TestZigzagPathIsConnected(t *testing.T) {
	for _, dims := range [][2]int{{1, 6}, {2, 7}, {3, 5}, {4, 4}, {5, 3}} {
		rows, cols := dims[0], dims[1]
		g := New(rows, cols)
		path := zigzagPath(rows, cols)
		for i := 1; i < len(path); i++ {
			pr, pc := g.RowCol(path[i-1])
			r, c := g.RowCol(path[i])
			dr, dc := r-pr, c-pc
			assert.Equal(t, 1, dr*dr+dc*dc,
				"%dx%d step %d->%d", rows, cols, path[i-1], path[i])
		}
	}
}

func TestSeedGridFillsEveryCell(t *testing.T) {
	g := SeedGrid(3, 4)
	assert.True(t, g.IsFull())

	onPath := make(map[int]bool)
	for _, idx := range zigzagPath(3, 4) {
		onPath[idx] = true
	}
	for i := 0; i < g.Capacity(); i++ {
		if onPath[i] {
			assert.Equal(t, River, g.KindAt(i), "index %d", i)
		} else {
			assert.Equal(t, Terrain, g.KindAt(i), "index %d", i)
		}
	}
}

func TestSeedGridSingleRowIsAllRiver(t *testing.T) {
	g := SeedGrid(1, 5)
	require.True(t, g.IsFull())
	for i := 0; i < 5; i++ {
		assert.Equal(t, River, g.KindAt(i))
	}
	assert.Equal(t, 0, Score(Meadow, g))
}

func TestSeedGridValue3x3(t *testing.T) {
	g := SeedGrid(3, 3)
	// River 0,1,4,5; terrain 2,3,6,7,8 scores 0+18+12+24+12.
	assert.Equal(t, 66, Score(Mountain, g))
}
