package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automata-games/tilerun/components"
	cfg "github.com/automata-games/tilerun/config"
	"github.com/automata-games/tilerun/leveldata"
	"github.com/automata-games/tilerun/physics"
)

// UpdateEnemy runs the patrol AI: walk in the current heading, reverse on
// wall contact or when the next step would walk off the platform.
func UpdateEnemy(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	grid := components.Level.Get(levelEntry).Level.Grid

	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		state := components.State.Get(e)
		phys := components.Physics.Get(e)
		obj := components.Object.Get(e)

		if state.CurrentState == cfg.StateStomped {
			phys.SpeedX = 0
			return
		}

		if phys.Contacts.WallLeft {
			enemy.DirectionX = cfg.DirectionRight
		} else if phys.Contacts.WallRight {
			enemy.DirectionX = cfg.DirectionLeft
		}

		if phys.Contacts.Grounded && atPlatformEdge(grid, obj.Box, enemy.DirectionX) {
			enemy.DirectionX = -enemy.DirectionX
		}

		phys.SpeedX = enemy.DirectionX * enemy.TypeConfig.PatrolSpeed
	})
}

// atPlatformEdge probes the cell below the leading bottom corner. An edge
// is any cell that would not carry the enemy, including the open space
// past the level's bottom boundary.
func atPlatformEdge(grid *leveldata.TileGrid, box physics.AABB, dirX float64) bool {
	lead := box.Left() - 1
	if dirX > 0 {
		lead = box.Right() + 1
	}
	col := int(math.Floor(lead / leveldata.TileSize))
	row := int(math.Floor((box.Bottom() + 1) / leveldata.TileSize))

	switch grid.ClassAt(col, row) {
	case leveldata.ClassSolid, leveldata.ClassOneWay:
		return false
	}
	return true
}
