package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automata-games/tilerun/components"
	cfg "github.com/automata-games/tilerun/config"
)

// UpdateCamera eases the view center toward the player and clamps it to
// the level so the view never shows past the boundary walls.
func UpdateCamera(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}

	camera := components.Camera.Get(cameraEntry)
	box := components.Object.Get(playerEntry).Box
	grid := components.Level.Get(levelEntry).Level.Grid

	camera.Position.X += (box.X - camera.Position.X) * cfg.Camera.FollowSmoothing
	camera.Position.Y += (box.Y - camera.Position.Y) * cfg.Camera.FollowSmoothing

	camera.Position.X = clampAxis(camera.Position.X, float64(cfg.C.Width), grid.WidthPx())
	camera.Position.Y = clampAxis(camera.Position.Y, float64(cfg.C.Height), grid.HeightPx())
}

// clampAxis keeps a view of the given extent inside [0, worldExtent],
// centering when the level is smaller than the view.
func clampAxis(center, viewExtent, worldExtent float64) float64 {
	half := viewExtent / 2
	if worldExtent <= viewExtent {
		return worldExtent / 2
	}
	if center < half {
		return half
	}
	if center > worldExtent-half {
		return worldExtent - half
	}
	return center
}
