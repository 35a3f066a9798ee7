package factory

import (
	"fmt"

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

// CreateEnemy spawns one enemy of the named kind from config. Unknown
// kinds are an error so malformed level rosters fail the load instead of
// silently spawning a default.
func CreateEnemy(ecs *ecs.ECS, lib *animations.Library, x, y float64, typeName string) (*donburi.Entry, error) {
	enemyType, ok := cfg.Enemy.Types[typeName]
	if !ok {
		return nil, fmt.Errorf("unknown enemy kind %q", typeName)
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	box := physics.NewAABB(x, y, enemyType.HalfWidth, enemyType.HalfHeight)
	obj := resolv.NewObject(box.Left(), box.Top(), box.HalfW*2, box.HalfH*2, tags.ResolvEnemy)
	obj.Data = enemy
	MustSpace(ecs).Add(obj)
	components.Object.SetValue(enemy, components.ObjectData{Box: box, Collider: obj})

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:   typeName,
		TypeConfig: &enemyType,
		DirectionX: cfg.DirectionLeft, // patrol starts heading left
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.StatePatrol,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity:  enemyType.Gravity,
		MaxSpeed: enemyType.PatrolSpeed,
		MaxFall:  enemyType.MaxFall,
	})

	animData := GenerateAnimations(lib, enemyType.SpriteSheetKey, enemyType.FrameWidth, enemyType.FrameHeight, cfg.StatePatrol)
	components.Animation.Set(enemy, animData)

	return enemy, nil
}
