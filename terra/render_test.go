package terra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSingleRow(t *testing.T) {
	g := New(1, 2)
	require.True(t, g.PlaceRiver(0))
	require.True(t, g.PlaceTerrain(1))

	want := "  ---------\n" +
		"  | R | M |\n" +
		"  ---------\n"
	assert.Equal(t, want, Render(g, Meadow))
}

func TestRenderUsesFamilyLabel(t *testing.T) {
	g := New(1, 1)
	require.True(t, g.PlaceTerrain(0))
	assert.Contains(t, Render(g, Suburb), "| S |")
	assert.Contains(t, Render(g, Thicket), "| T |")
	assert.Contains(t, Render(g, Mountain), "| M |")
}

func TestRenderEmptyCellsAreBlank(t *testing.T) {
	g := New(2, 2)
	require.True(t, g.PlaceRiver(0))

	want := "  ---------\n" +
		"  | R |   |\n" +
		"  ---------\n" +
		"  |   |   |\n" +
		"  ---------\n"
	assert.Equal(t, want, Render(g, Meadow))
}
