package components

import (
	"github.com/yohamta/donburi"

	"github.com/automata-games/tilerun/assets/animations"
	"github.com/automata-games/tilerun/leveldata"
)

// LevelData holds the active level. Changed accumulates every tile
// mutation since load so renderers and snapshots can apply deltas
// instead of rescanning the grid. Clips is the library entities spawned
// mid-level (pickups) build their animations from.
type LevelData struct {
	Level   *leveldata.Level
	Changed []leveldata.TileChange
	Clips   *animations.Library
}

var Level = donburi.NewComponentType[LevelData]()
