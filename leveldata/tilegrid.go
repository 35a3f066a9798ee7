// Package leveldata provides tile grid storage and TMX level parsing.
// It depends only on go-tiled for parsing; no engine, ECS, or collision
// imports, so the simulation and its tests can use it directly.
package leveldata

import (
	"errors"
	"fmt"
)

// TileSize is the tile-to-world scale: every tile is a square of this many
// pixels, and grid coordinates are worldPx / TileSize.
const TileSize = 16.0

// ErrOutOfBounds is returned by TileAt and SetTile for coordinates outside
// the grid. Collision code recovers from it locally by treating the missing
// cell as solid; it is never propagated further.
var ErrOutOfBounds = errors.New("leveldata: tile coordinate out of bounds")

// TileKind is the closed set of tile variants a level cell can hold.
type TileKind uint8

const (
	Empty TileKind = iota
	Solid
	OneWayPlatform
	Hazard
	PowerupBlock
	Coin
	Goal
)

func (k TileKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Solid:
		return "solid"
	case OneWayPlatform:
		return "oneway"
	case Hazard:
		return "hazard"
	case PowerupBlock:
		return "powerup_block"
	case Coin:
		return "coin"
	case Goal:
		return "goal"
	default:
		return fmt.Sprintf("tilekind(%d)", uint8(k))
	}
}

// CollisionClass groups tile kinds by how the collision resolver treats them.
type CollisionClass uint8

const (
	ClassNone CollisionClass = iota
	ClassSolid
	ClassOneWay
	ClassHazard
	ClassInteractive
)

// Class returns the collision class for a tile kind. The switch is exhaustive
// over TileKind so adding a kind without classifying it fails loudly in tests.
func (k TileKind) Class() CollisionClass {
	switch k {
	case Empty:
		return ClassNone
	case Solid, PowerupBlock:
		return ClassSolid
	case OneWayPlatform:
		return ClassOneWay
	case Hazard:
		return ClassHazard
	case Coin, Goal:
		return ClassInteractive
	default:
		return ClassSolid
	}
}

// TileChange records a single cell mutation, used for snapshot deltas.
type TileChange struct {
	Col, Row int
	Kind     TileKind
}

// TileGrid is a row-major, fixed-size grid of tile kinds. It is created once
// per level load; the only mutation afterwards is SetTile for block-break
// events.
type TileGrid struct {
	cols, rows int
	kinds      []TileKind
}

// NewTileGrid returns an all-Empty grid of the given extent.
func NewTileGrid(cols, rows int) *TileGrid {
	if cols <= 0 || rows <= 0 {
		panic(fmt.Sprintf("leveldata: invalid grid extent %dx%d", cols, rows))
	}
	return &TileGrid{
		cols:  cols,
		rows:  rows,
		kinds: make([]TileKind, cols*rows),
	}
}

func (g *TileGrid) Cols() int { return g.cols }
func (g *TileGrid) Rows() int { return g.rows }

// WidthPx and HeightPx are the world-space extents of the grid.
func (g *TileGrid) WidthPx() float64  { return float64(g.cols) * TileSize }
func (g *TileGrid) HeightPx() float64 { return float64(g.rows) * TileSize }

func (g *TileGrid) inBounds(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// TileAt returns the tile kind at the given cell, or ErrOutOfBounds.
func (g *TileGrid) TileAt(col, row int) (TileKind, error) {
	if !g.inBounds(col, row) {
		return Empty, fmt.Errorf("tile (%d,%d): %w", col, row, ErrOutOfBounds)
	}
	return g.kinds[row*g.cols+col], nil
}

// SetTile overwrites the kind at the given cell. Used for block-break
// mutation (PowerupBlock -> Empty); the one-directional invariant is enforced
// by the interaction system, which only breaks cells that still hold a block.
func (g *TileGrid) SetTile(col, row int, kind TileKind) error {
	if !g.inBounds(col, row) {
		return fmt.Errorf("tile (%d,%d): %w", col, row, ErrOutOfBounds)
	}
	g.kinds[row*g.cols+col] = kind
	return nil
}

// ClassAt is the collision view of the grid. Cells beyond the side and top
// edges read as solid, which gives the level an implicit boundary wall; cells
// below the bottom edge read as empty so entities can fall out of the level
// (the death system picks them up there).
func (g *TileGrid) ClassAt(col, row int) CollisionClass {
	if row >= g.rows {
		return ClassNone
	}
	if col < 0 || col >= g.cols || row < 0 {
		return ClassSolid
	}
	return g.kinds[row*g.cols+col].Class()
}

// KindAt is like TileAt but maps out-of-bounds cells to Empty. Callers that
// care about the boundary rule use ClassAt instead.
func (g *TileGrid) KindAt(col, row int) TileKind {
	if !g.inBounds(col, row) {
		return Empty
	}
	return g.kinds[row*g.cols+col]
}
