package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automata-games/tilerun/leveldata"
)

const step = 1.0 / 60.0

// gridFromRows builds a grid from an ASCII picture, one rune per cell:
// '.' empty, 'X' solid, '-' one-way platform, '^' hazard, 'B' powerup
// block, 'c' coin, 'G' goal.
func gridFromRows(t *testing.T, rows []string) *leveldata.TileGrid {
	t.Helper()
	g := leveldata.NewTileGrid(len(rows[0]), len(rows))
	for row, line := range rows {
		for col, ch := range line {
			var kind leveldata.TileKind
			switch ch {
			case '.':
				continue
			case 'X':
				kind = leveldata.Solid
			case '-':
				kind = leveldata.OneWayPlatform
			case '^':
				kind = leveldata.Hazard
			case 'B':
				kind = leveldata.PowerupBlock
			case 'c':
				kind = leveldata.Coin
			case 'G':
				kind = leveldata.Goal
			default:
				t.Fatalf("unknown cell rune %q", ch)
			}
			require.NoError(t, g.SetTile(col, row, kind))
		}
	}
	return g
}

// overlapsSolid reports whether the box interior intersects any solid cell.
func overlapsSolid(g *leveldata.TileGrid, box AABB) bool {
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if g.KindAt(col, row).Class() != leveldata.ClassSolid {
				continue
			}
			cell := AABB{
				X:     (float64(col) + 0.5) * leveldata.TileSize,
				Y:     (float64(row) + 0.5) * leveldata.TileSize,
				HalfW: leveldata.TileSize / 2,
				HalfH: leveldata.TileSize / 2,
			}
			if box.Overlaps(cell) {
				return true
			}
		}
	}
	return false
}

func TestResolveLandsOnSolid(t *testing.T) {
	g := gridFromRows(t, []string{
		"....",
		"....",
		"....",
		"XXXX",
	})
	box := NewAABB(32, 40, 5, 7)

	res := Resolve(box, Vec2{Y: 300}, g, step)

	assert.True(t, res.Flags.Grounded)
	assert.Zero(t, res.Vel.Y)
	assert.InDelta(t, 48.0, res.Box.Bottom(), 1e-9)
	assert.False(t, overlapsSolid(g, res.Box))
}

func TestResolveClampsAgainstWalls(t *testing.T) {
	tests := []struct {
		name      string
		rows      []string
		velX      float64
		wantX     float64
		wantLeft  bool
		wantRight bool
	}{
		{
			name:      "right wall",
			rows:      []string{"..X", "..X", "..X"},
			velX:      400,
			wantX:     32 - 5,
			wantRight: true,
		},
		{
			name:     "left wall",
			rows:     []string{"X..", "X..", "X.."},
			velX:     -400,
			wantX:    16 + 5,
			wantLeft: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gridFromRows(t, tt.rows)
			box := NewAABB(24, 24, 5, 7)

			res := Resolve(box, Vec2{X: tt.velX}, g, step)

			assert.InDelta(t, tt.wantX, res.Box.X, 1e-9)
			assert.Zero(t, res.Vel.X)
			assert.Equal(t, tt.wantLeft, res.Flags.WallLeft)
			assert.Equal(t, tt.wantRight, res.Flags.WallRight)
			assert.False(t, res.Flags.Grounded)
			assert.False(t, overlapsSolid(g, res.Box))
		})
	}
}

func TestResolveHorizontalHitLeavesVerticalAlone(t *testing.T) {
	g := gridFromRows(t, []string{"..X", "..X", "..X"})
	box := NewAABB(24, 24, 5, 7)

	res := Resolve(box, Vec2{X: 400, Y: -100}, g, step)

	assert.True(t, res.Flags.WallRight)
	assert.Zero(t, res.Vel.X)
	assert.InDelta(t, -100.0, res.Vel.Y, 1e-9)
	assert.InDelta(t, 24.0-100.0*step, res.Box.Y, 1e-9)
	assert.False(t, res.Flags.Ceiling)
}

func TestResolveOneWayPlatform(t *testing.T) {
	rows := []string{
		"..",
		"..",
		"--",
		"..",
	}

	t.Run("lands when falling from above", func(t *testing.T) {
		g := gridFromRows(t, rows)
		box := NewAABB(8, 24, 5, 7) // bottom edge at 31, platform top at 32

		res := Resolve(box, Vec2{Y: 300}, g, step)

		assert.True(t, res.Flags.Grounded)
		assert.Zero(t, res.Vel.Y)
		assert.InDelta(t, 32.0, res.Box.Bottom(), 1e-9)
	})

	t.Run("keeps falling when already inside", func(t *testing.T) {
		g := gridFromRows(t, rows)
		box := NewAABB(8, 27, 5, 7) // bottom edge at 34, below platform top

		res := Resolve(box, Vec2{Y: 300}, g, step)

		assert.False(t, res.Flags.Grounded)
		assert.InDelta(t, 27.0+300.0*step, res.Box.Y, 1e-9)
	})

	t.Run("passes through when moving up", func(t *testing.T) {
		g := gridFromRows(t, rows)
		box := NewAABB(8, 44, 5, 7)

		res := Resolve(box, Vec2{Y: -300}, g, step)

		assert.False(t, res.Flags.Ceiling)
		assert.InDelta(t, -300.0, res.Vel.Y, 1e-9)
		assert.InDelta(t, 44.0-300.0*step, res.Box.Y, 1e-9)
	})

	t.Run("never blocks horizontally", func(t *testing.T) {
		g := gridFromRows(t, []string{
			"..",
			".-",
		})
		box := NewAABB(8, 24, 5, 7)

		res := Resolve(box, Vec2{X: 400}, g, step)

		assert.False(t, res.Flags.WallRight)
		assert.InDelta(t, 8.0+400.0*step, res.Box.X, 1e-9)
	})
}

func TestResolveHeadBumpReportsStruckCells(t *testing.T) {
	g := gridFromRows(t, []string{
		"XB",
		"..",
		"..",
	})
	box := NewAABB(24, 24, 5, 7)

	res := Resolve(box, Vec2{Y: -600}, g, step)

	assert.True(t, res.Flags.Ceiling)
	assert.Zero(t, res.Vel.Y)
	assert.InDelta(t, 16.0, res.Box.Top(), 1e-9)
	require.Len(t, res.Struck, 1)
	assert.Equal(t, TileOverlap{Col: 1, Row: 0, Kind: leveldata.PowerupBlock}, res.Struck[0])
}

func TestResolveCollectsOverlaps(t *testing.T) {
	g := gridFromRows(t, []string{
		"..",
		"^c",
		"..",
	})
	box := NewAABB(16, 24, 8, 7)

	res := Resolve(box, Vec2{}, g, step)

	require.Len(t, res.Overlaps, 2)
	assert.Contains(t, res.Overlaps, TileOverlap{Col: 0, Row: 1, Kind: leveldata.Hazard})
	assert.Contains(t, res.Overlaps, TileOverlap{Col: 1, Row: 1, Kind: leveldata.Coin})
}

func TestResolveRecomputesGroundedEachStep(t *testing.T) {
	g := gridFromRows(t, []string{
		"....",
		"....",
		"....",
		"XXXX",
	})
	box := NewAABB(32, 41, 5, 7) // resting on the ground row

	// Gravity pushes a resting box into the ground row every step,
	// re-detecting the contact
	res := Resolve(box, Vec2{Y: 30}, g, step)
	assert.True(t, res.Flags.Grounded)
	assert.InDelta(t, 41.0, res.Box.Y, 1e-9)

	// An upward impulse clears the flag on the very next step
	res = Resolve(box, Vec2{Y: -300}, g, step)
	assert.False(t, res.Flags.Grounded)
	assert.InDelta(t, 41.0-300.0*step, res.Box.Y, 1e-9)
}

func TestResolveBoundaryWalls(t *testing.T) {
	g := gridFromRows(t, []string{
		"..",
		"..",
	})

	// Side edges clamp like solid tiles
	res := Resolve(NewAABB(8, 8, 5, 7), Vec2{X: -400}, g, step)
	assert.True(t, res.Flags.WallLeft)
	assert.InDelta(t, 5.0, res.Box.X, 1e-9)

	// The bottom edge is open, entities fall out of the level
	res = Resolve(NewAABB(8, 24, 5, 7), Vec2{Y: 400}, g, step)
	assert.False(t, res.Flags.Grounded)
	assert.InDelta(t, 24.0+400.0*step, res.Box.Y, 1e-9)
}
