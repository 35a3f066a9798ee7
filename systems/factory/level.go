package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automata-games/tilerun/archetypes"
	"github.com/automata-games/tilerun/components"
	"github.com/automata-games/tilerun/leveldata"
)

func CreateLevel(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{Level: level})
	return entry
}

func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	data := components.Camera.Get(camera)
	data.Position.X = x
	data.Position.Y = y
	return camera
}

func CreateSession(ecs *ecs.ECS) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		Status: components.StatusPlaying,
	})
	return session
}
