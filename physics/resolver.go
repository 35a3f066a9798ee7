package physics

import (
	"math"

	"github.com/automata-games/tilerun/leveldata"
)

// skin is the tolerance used when converting box edges to tile spans. It
// keeps a box resting exactly on a tile boundary from also counting as
// occupying the neighboring cell.
const skin = 1e-4

// ContactFlags describe the tile contacts produced by one resolve step. They
// are recomputed from scratch every step and never carried over, so leaving a
// platform clears Grounded on the next step.
type ContactFlags struct {
	Grounded  bool
	WallLeft  bool
	WallRight bool
	Ceiling   bool
}

// TileOverlap identifies a grid cell the entity touched or overlapped during
// resolution, with the kind observed at that moment.
type TileOverlap struct {
	Col, Row int
	Kind     leveldata.TileKind
}

// Result is the outcome of resolving one entity for one step.
type Result struct {
	Box   AABB
	Vel   Vec2
	Flags ContactFlags

	// Struck lists the solid-class cells that clamped upward motion this
	// step (head bumps). The interaction system breaks PowerupBlock cells
	// found here.
	Struck []TileOverlap

	// Overlaps lists hazard and interactive cells the final box overlaps.
	// These never clamp movement; the caller consumes them as events.
	Overlaps []TileOverlap
}

// Resolve sweeps the box along its velocity for one fixed step and clamps it
// against the grid. The sweep is per-axis, X first then Y, with each axis
// independently clamped to the first tile boundary hit along that axis.
// Resolving X first avoids corner-catching when running into a step; the two
// axis resolutions share no state beyond the X-corrected position, so
// horizontal blocking can never alter vertical velocity or vice versa.
func Resolve(box AABB, vel Vec2, grid *leveldata.TileGrid, dt float64) Result {
	res := Result{Box: box, Vel: vel}

	sweepX(&res, grid, vel.X*dt)
	sweepY(&res, grid, vel.Y*dt)
	collectOverlaps(&res, grid)

	return res
}

func tileIndex(worldPx float64) int {
	return int(math.Floor(worldPx / leveldata.TileSize))
}

// rowSpan returns the inclusive tile-row range covered by the box's vertical
// extent, inset by skin on both sides.
func rowSpan(box AABB) (int, int) {
	return tileIndex(box.Top() + skin), tileIndex(box.Bottom() - skin)
}

func colSpan(box AABB) (int, int) {
	return tileIndex(box.Left() + skin), tileIndex(box.Right() - skin)
}

// solidInColumn reports whether any cell of the column within the row range
// blocks horizontal movement. Only solid-class cells block on the X axis;
// one-way platforms and hazard/interactive cells never do.
func solidInColumn(grid *leveldata.TileGrid, col, rowMin, rowMax int) bool {
	for row := rowMin; row <= rowMax; row++ {
		if grid.ClassAt(col, row) == leveldata.ClassSolid {
			return true
		}
	}
	return false
}

func sweepX(res *Result, grid *leveldata.TileGrid, dx float64) {
	if dx == 0 {
		return
	}
	rowMin, rowMax := rowSpan(res.Box)

	if dx > 0 {
		lead := res.Box.Right()
		startCol := tileIndex(lead - skin)
		endCol := tileIndex(lead + dx)
		for col := startCol + 1; col <= endCol; col++ {
			if solidInColumn(grid, col, rowMin, rowMax) {
				res.Box.X = float64(col)*leveldata.TileSize - res.Box.HalfW
				res.Vel.X = 0
				res.Flags.WallRight = true
				return
			}
		}
	} else {
		lead := res.Box.Left()
		startCol := tileIndex(lead + skin)
		endCol := tileIndex(lead + dx)
		for col := startCol - 1; col >= endCol; col-- {
			if solidInColumn(grid, col, rowMin, rowMax) {
				res.Box.X = float64(col+1)*leveldata.TileSize + res.Box.HalfW
				res.Vel.X = 0
				res.Flags.WallLeft = true
				return
			}
		}
	}
	res.Box.X += dx
}

func sweepY(res *Result, grid *leveldata.TileGrid, dy float64) {
	colMin, colMax := colSpan(res.Box)

	if dy > 0 {
		// prevBottom is the bottom edge before this step's vertical
		// displacement; the one-way rule compares against it, not the
		// final position, so an entity already inside a platform's band
		// keeps falling through instead of snapping up.
		prevBottom := res.Box.Bottom()
		lead := res.Box.Bottom()
		startRow := tileIndex(lead - skin)
		endRow := tileIndex(lead + dy)
		for row := startRow + 1; row <= endRow; row++ {
			if landingInRow(grid, row, colMin, colMax, prevBottom) {
				res.Box.Y = float64(row)*leveldata.TileSize - res.Box.HalfH
				res.Vel.Y = 0
				res.Flags.Grounded = true
				return
			}
		}
		res.Box.Y += dy
	} else if dy < 0 {
		lead := res.Box.Top()
		startRow := tileIndex(lead + skin)
		endRow := tileIndex(lead + dy)
		for row := startRow - 1; row >= endRow; row-- {
			if struck := solidCellsInRow(grid, row, colMin, colMax); len(struck) > 0 {
				res.Box.Y = float64(row+1)*leveldata.TileSize + res.Box.HalfH
				res.Vel.Y = 0
				res.Flags.Ceiling = true
				res.Struck = struck
				return
			}
		}
		res.Box.Y += dy
	}
}

// landingInRow reports whether the row blocks downward movement across the
// given column span. Solid cells always block; one-way platforms block only
// when the entity's previous bottom edge was at or above the platform top.
func landingInRow(grid *leveldata.TileGrid, row, colMin, colMax int, prevBottom float64) bool {
	rowTop := float64(row) * leveldata.TileSize
	for col := colMin; col <= colMax; col++ {
		switch grid.ClassAt(col, row) {
		case leveldata.ClassSolid:
			return true
		case leveldata.ClassOneWay:
			if prevBottom <= rowTop+skin {
				return true
			}
		}
	}
	return false
}

// solidCellsInRow returns the solid-class cells of the row within the column
// span, preserving the tile kind so PowerupBlock strikes stay identifiable.
func solidCellsInRow(grid *leveldata.TileGrid, row, colMin, colMax int) []TileOverlap {
	var cells []TileOverlap
	for col := colMin; col <= colMax; col++ {
		if grid.ClassAt(col, row) == leveldata.ClassSolid {
			cells = append(cells, TileOverlap{Col: col, Row: row, Kind: grid.KindAt(col, row)})
		}
	}
	return cells
}

// collectOverlaps scans the final box for hazard and interactive cells.
func collectOverlaps(res *Result, grid *leveldata.TileGrid) {
	colMin, colMax := colSpan(res.Box)
	rowMin, rowMax := rowSpan(res.Box)
	for row := rowMin; row <= rowMax; row++ {
		for col := colMin; col <= colMax; col++ {
			switch grid.ClassAt(col, row) {
			case leveldata.ClassHazard, leveldata.ClassInteractive:
				res.Overlaps = append(res.Overlaps, TileOverlap{
					Col: col, Row: row, Kind: grid.KindAt(col, row),
				})
			}
		}
	}
}
