package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automata-games/tilerun/components"
	cfg "github.com/automata-games/tilerun/config"
)

// UpdatePhysics applies gravity and the terminal fall speed to every
// entity. Horizontal control happens in the player/enemy/pickup systems;
// this one only integrates the shared vertical forces.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		phys := components.Physics.Get(e)

		phys.SpeedY += phys.Gravity * cfg.Physics.Dt
		if phys.MaxFall > 0 && phys.SpeedY > phys.MaxFall {
			phys.SpeedY = phys.MaxFall
		}
	})
}
