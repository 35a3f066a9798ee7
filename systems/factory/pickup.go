package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automata-games/tilerun/archetypes"
	"github.com/automata-games/tilerun/assets/animations"
	"github.com/automata-games/tilerun/components"
	cfg "github.com/automata-games/tilerun/config"
	"github.com/automata-games/tilerun/physics"
	"github.com/automata-games/tilerun/tags"
)

// CreatePickup spawns a collectible above a broken powerup block. It
// drifts away from the player, falls with gravity and is collected on
// touch.
func CreatePickup(ecs *ecs.ECS, lib *animations.Library, x, y, directionX float64) *donburi.Entry {
	pickup := archetypes.Pickup.Spawn(ecs)

	box := physics.NewAABB(x, y, cfg.Pickup.HalfWidth, cfg.Pickup.HalfHeight)
	obj := resolv.NewObject(box.Left(), box.Top(), box.HalfW*2, box.HalfH*2, tags.ResolvPickup)
	obj.Data = pickup
	MustSpace(ecs).Add(obj)
	components.Object.SetValue(pickup, components.ObjectData{Box: box, Collider: obj})

	components.Pickup.SetValue(pickup, components.PickupData{DirectionX: directionX})
	components.State.SetValue(pickup, components.StateData{
		CurrentState:  cfg.StateDrift,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(pickup, components.PhysicsData{
		Gravity:  cfg.Pickup.Gravity,
		MaxSpeed: cfg.Pickup.Speed,
		MaxFall:  cfg.Pickup.MaxFall,
		SpeedX:   directionX * cfg.Pickup.Speed,
	})

	animData := GenerateAnimations(lib, cfg.Pickup.SpriteSheetKey, cfg.Pickup.FrameWidth, cfg.Pickup.FrameHeight, cfg.StateDrift)
	components.Animation.Set(pickup, animData)

	return pickup
}
