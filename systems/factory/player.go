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

func CreatePlayer(ecs *ecs.ECS, lib *animations.Library, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	box := physics.NewAABB(x, y, cfg.Player.HalfWidth, cfg.Player.HalfHeight)
	obj := resolv.NewObject(box.Left(), box.Top(), box.HalfW*2, box.HalfH*2, tags.ResolvPlayer)
	obj.Data = player
	MustSpace(ecs).Add(obj)
	components.Object.SetValue(player, components.ObjectData{Box: box, Collider: obj})

	components.Player.SetValue(player, components.PlayerData{
		FacingX:      cfg.DirectionRight,
		InvulnFrames: 0,
		SpawnX:       x,
		SpawnY:       y,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Accel:    cfg.Player.Acceleration,
		Gravity:  cfg.Physics.Gravity,
		Friction: cfg.Player.Friction,
		MaxSpeed: cfg.Player.MaxSpeed,
		MaxFall:  cfg.Physics.MaxFallSpeed,
	})
	components.Lives.SetValue(player, components.LivesData{
		Lives:    cfg.Player.StartingLives,
		MaxLives: cfg.Player.StartingLives,
	})

	animData := GenerateAnimations(lib, "player", cfg.Player.FrameWidth, cfg.Player.FrameHeight, cfg.Idle)
	components.Animation.Set(player, animData)

	return player
}
