package terra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiverMustStartOnBorder(t *testing.T) {
	g := New(3, 3)
	assert.False(t, g.PlaceRiver(4))
	assert.Equal(t, Empty, g.KindAt(4))
	assert.False(t, g.RiverStarted())

	require.True(t, g.PlaceRiver(0))
	assert.True(t, g.RiverStarted())
	assert.Equal(t, 0, g.RiverHead())
}

func TestRiverGrowsOnlyFromHead(t *testing.T) {
	g := New(3, 3)
	require.True(t, g.PlaceRiver(0))

	// 2 and 6 are border cells but not adjacent to the head.
	assert.False(t, g.PlaceRiver(2))
	assert.False(t, g.PlaceRiver(6))
	// 4 does not touch the head either.
	assert.False(t, g.PlaceRiver(4))

	require.True(t, g.PlaceRiver(1))
	assert.Equal(t, 1, g.RiverHead())
	// 3 touches 0 but the head is now 1.
	assert.False(t, g.PlaceRiver(3))
	require.True(t, g.PlaceRiver(4))
	assert.Equal(t, 4, g.RiverHead())
}

func TestPlacementFailsOnOccupiedCell(t *testing.T) {
	g := New(2, 2)
	require.True(t, g.PlaceTerrain(1))
	assert.False(t, g.PlaceTerrain(1))
	assert.False(t, g.PlaceRiver(1))
	assert.Equal(t, 1, g.FilledCount())
}

func TestFailedPlacementLeavesGridUntouched(t *testing.T) {
	g := New(3, 3)
	require.True(t, g.PlaceRiver(0))
	before := g.Clone()

	// Not adjacent to the head: must be a pure no-op, not a partial
	// mutation rolled back.
	assert.False(t, g.PlaceRiver(8))
	require.Equal(t, before, g)
}

func TestRemoveTerrainRestoresExactly(t *testing.T) {
	g := New(2, 3)
	require.True(t, g.PlaceRiver(0))
	require.True(t, g.PlaceTerrain(4))
	before := g.Clone()

	require.True(t, g.PlaceTerrain(5))
	g.Remove(5)
	require.Equal(t, before, g)
}

func TestRemoveRiverHeadRollsBack(t *testing.T) {
	g := New(1, 4)
	require.True(t, g.PlaceRiver(0))
	require.True(t, g.PlaceRiver(1))
	assert.Equal(t, 1, g.RiverHead())

	g.Remove(1)
	assert.Equal(t, 0, g.RiverHead())
	assert.True(t, g.RiverStarted())
	assert.Equal(t, Empty, g.KindAt(1))

	g.Remove(0)
	assert.False(t, g.RiverStarted())
	assert.Equal(t, -1, g.RiverHead())

	// Border-start rule is re-armed once the river is gone.
	assert.True(t, g.PlaceRiver(2))
}

// Removing a just-placed river cell must restore the grid bit-for-bit,
// including the head history, all the way back down to empty.
func TestRemoveRiverRestoresExactly(t *testing.T) {
	g := New(3, 3)
	require.True(t, g.PlaceRiver(0))
	before := g.Clone()

	require.True(t, g.PlaceRiver(1))
	g.Remove(1)
	require.Equal(t, before, g)

	g.Remove(0)
	require.Equal(t, New(3, 3), g)
}

// Repeated place/remove pairs on the same cell are bit-for-bit stable.
func TestRiverUndoIsStable(t *testing.T) {
	g := New(3, 3)
	require.True(t, g.PlaceRiver(0))
	require.True(t, g.PlaceRiver(1))
	require.True(t, g.PlaceRiver(4))
	g.Remove(4)
	before := g.Clone()

	require.True(t, g.PlaceRiver(4))
	g.Remove(4)
	require.Equal(t, before, g)

	require.True(t, g.PlaceRiver(2))
	g.Remove(2)
	require.Equal(t, before, g)
}

func TestRemoveIgnoresEmptyAndOutOfRange(t *testing.T) {
	g := New(2, 2)
	require.True(t, g.PlaceTerrain(0))
	before := g.Clone()

	g.Remove(1)
	g.Remove(-1)
	g.Remove(99)
	require.Equal(t, before, g)
}
