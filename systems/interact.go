package systems

import (
	"log"

	"github.com/yohamta/donburi/ecs"

	"github.com/automata-games/tilerun/components"
	cfg "github.com/automata-games/tilerun/config"
	"github.com/automata-games/tilerun/leveldata"
	"github.com/automata-games/tilerun/systems/factory"
)

// UpdateInteractions consumes the player's tile events from this tick's
// resolve: powerup blocks struck from below, coin and goal overlap, and
// hazard contact.
func UpdateInteractions(ecs *ecs.ECS) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	sessionEntry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}

	player := components.Player.Get(playerEntry)
	phys := components.Physics.Get(playerEntry)
	levelData := components.Level.Get(levelEntry)
	session := components.Session.Get(sessionEntry)

	for _, cell := range phys.Struck {
		// Only powerup blocks react to a head bump. The resolver reports
		// the kind observed during the sweep, so a cell already broken to
		// Empty never shows up here again.
		if cell.Kind != leveldata.PowerupBlock {
			continue
		}
		breakTile(levelData, cell.Col, cell.Row)
		player.Score += cfg.Score.Block

		x := (float64(cell.Col) + 0.5) * leveldata.TileSize
		y := float64(cell.Row)*leveldata.TileSize - cfg.Pickup.HalfHeight
		factory.CreatePickup(ecs, levelData.Clips, x, y, player.FacingX)
	}

	for _, cell := range phys.Overlaps {
		switch cell.Kind {
		case leveldata.Coin:
			breakTile(levelData, cell.Col, cell.Row)
			player.Coins++
			player.Score += cfg.Score.Coin
		case leveldata.Goal:
			if session.Status == components.StatusPlaying {
				session.Status = components.StatusLevelComplete
			}
		case leveldata.Hazard:
			KillPlayer(ecs, playerEntry)
		}
	}
}

func breakTile(levelData *components.LevelData, col, row int) {
	if err := levelData.Level.Grid.SetTile(col, row, leveldata.Empty); err != nil {
		log.Printf("interact: clearing tile (%d,%d): %v", col, row, err)
		return
	}
	levelData.Changed = append(levelData.Changed, leveldata.TileChange{
		Col: col, Row: row, Kind: leveldata.Empty,
	})
}
