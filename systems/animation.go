package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automata-games/tilerun/components"
)

// UpdateAnimation pushes each entity's state into its animator and
// advances the active clip by one tick.
func UpdateAnimation(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)

		if e.HasComponent(components.State) {
			state := components.State.Get(e)
			anim.SetAnimation(state.CurrentState)
		}

		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}
