package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automata-games/tilerun/components"
	cfg "github.com/automata-games/tilerun/config"
)

// UpdatePickup keeps spawned pickups drifting. Unlike enemies they ignore
// platform edges and simply fall off, bouncing only off walls.
func UpdatePickup(ecs *ecs.ECS) {
	components.Pickup.Each(ecs.World, func(e *donburi.Entry) {
		pickup := components.Pickup.Get(e)
		phys := components.Physics.Get(e)

		if phys.Contacts.WallLeft {
			pickup.DirectionX = cfg.DirectionRight
		} else if phys.Contacts.WallRight {
			pickup.DirectionX = cfg.DirectionLeft
		}

		phys.SpeedX = pickup.DirectionX * cfg.Pickup.Speed
	})
}
