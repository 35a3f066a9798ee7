package leveldata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileGridSetAndGet(t *testing.T) {
	g := NewTileGrid(4, 3)

	kind, err := g.TileAt(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Empty, kind)

	require.NoError(t, g.SetTile(2, 1, Solid))
	kind, err = g.TileAt(2, 1)
	require.NoError(t, err)
	assert.Equal(t, Solid, kind)

	// Neighbors stay untouched
	kind, err = g.TileAt(1, 1)
	require.NoError(t, err)
	assert.Equal(t, Empty, kind)
}

func TestTileGridOutOfBounds(t *testing.T) {
	g := NewTileGrid(4, 3)

	tests := []struct {
		name     string
		col, row int
	}{
		{"negative col", -1, 0},
		{"negative row", 0, -1},
		{"col at extent", 4, 0},
		{"row at extent", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.TileAt(tt.col, tt.row)
			assert.ErrorIs(t, err, ErrOutOfBounds)

			err = g.SetTile(tt.col, tt.row, Solid)
			assert.ErrorIs(t, err, ErrOutOfBounds)
		})
	}
}

func TestTileKindClass(t *testing.T) {
	tests := []struct {
		kind TileKind
		want CollisionClass
	}{
		{Empty, ClassNone},
		{Solid, ClassSolid},
		{PowerupBlock, ClassSolid},
		{OneWayPlatform, ClassOneWay},
		{Hazard, ClassHazard},
		{Coin, ClassInteractive},
		{Goal, ClassInteractive},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Class())
		})
	}
}

func TestClassAtBoundaries(t *testing.T) {
	g := NewTileGrid(4, 3)

	// Side and top edges read as solid walls
	assert.Equal(t, ClassSolid, g.ClassAt(-1, 0))
	assert.Equal(t, ClassSolid, g.ClassAt(4, 0))
	assert.Equal(t, ClassSolid, g.ClassAt(2, -1))

	// Below the bottom edge is open so entities can fall out
	assert.Equal(t, ClassNone, g.ClassAt(2, 3))
	assert.Equal(t, ClassNone, g.ClassAt(-1, 3))
}

func TestTileGridExtent(t *testing.T) {
	g := NewTileGrid(10, 5)
	assert.Equal(t, 10, g.Cols())
	assert.Equal(t, 5, g.Rows())
	assert.InDelta(t, 160.0, g.WidthPx(), 1e-9)
	assert.InDelta(t, 80.0, g.HeightPx(), 1e-9)
}

func TestNewTileGridPanicsOnInvalidExtent(t *testing.T) {
	assert.Panics(t, func() { NewTileGrid(0, 5) })
	assert.Panics(t, func() { NewTileGrid(5, -1) })
}
