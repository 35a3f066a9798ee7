package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automata-games/tilerun/components"
	cfg "github.com/automata-games/tilerun/config"
	"github.com/automata-games/tilerun/physics"
)

// UpdateCollision sweeps every physical entity against the tile grid and
// writes the corrected box, velocity, contact flags and tile events back
// onto the entity, then mirrors the box into the broadphase space.
func UpdateCollision(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	grid := components.Level.Get(levelEntry).Level.Grid

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Physics) {
			return
		}
		phys := components.Physics.Get(e)
		obj := components.Object.Get(e)

		phys.PrevBottom = obj.Box.Bottom()

		res := physics.Resolve(obj.Box, physics.Vec2{X: phys.SpeedX, Y: phys.SpeedY}, grid, cfg.Physics.Dt)
		obj.Box = res.Box
		phys.SpeedX = res.Vel.X
		phys.SpeedY = res.Vel.Y
		phys.Contacts = res.Flags
		phys.Struck = res.Struck
		phys.Overlaps = res.Overlaps

		obj.SyncCollider()
	})
}
