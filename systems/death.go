package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automata-games/tilerun/components"
	cfg "github.com/automata-games/tilerun/config"
	"github.com/automata-games/tilerun/physics"
	"github.com/automata-games/tilerun/tags"
)

// KillPlayer starts the death sequence: invulnerability ignores the hit,
// otherwise control is cut, a small hop plays, and after the delay the
// death system respawns or ends the run.
func KillPlayer(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	state := components.State.Get(playerEntry)
	if player.InvulnFrames > 0 || state.CurrentState == cfg.Die {
		return
	}

	state.Transition(cfg.Die)
	player.DeathTimer = cfg.Player.DeathDelayFrames

	phys := components.Physics.Get(playerEntry)
	phys.SpeedX = 0
	phys.SpeedY = -cfg.Player.StompRebound

	// The corpse falls through enemies
	removeFromSpace(ecs, components.Object.Get(playerEntry))
}

// UpdateDeath advances death timers, handles fall-out below the level and
// performs respawn / game over / corpse removal.
func UpdateDeath(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	grid := components.Level.Get(levelEntry).Level.Grid
	bottom := grid.HeightPx()

	if playerEntry, ok := components.Player.First(ecs.World); ok {
		updatePlayerDeath(ecs, playerEntry, bottom)
	}

	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		state := components.State.Get(e)
		obj := components.Object.Get(e)

		if obj.Box.Top() > bottom {
			removeFromSpace(ecs, obj)
			ecs.World.Remove(e.Entity())
			return
		}
		if state.CurrentState != cfg.StateStomped {
			return
		}
		enemy.DeathTimer--
		if enemy.DeathTimer <= 0 {
			ecs.World.Remove(e.Entity())
		}
	})

	components.Pickup.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Box.Top() > bottom {
			removeFromSpace(ecs, obj)
			ecs.World.Remove(e.Entity())
		}
	})
}

func updatePlayerDeath(ecs *ecs.ECS, playerEntry *donburi.Entry, bottom float64) {
	player := components.Player.Get(playerEntry)
	state := components.State.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	// Falling out of the level skips the death animation
	if obj.Box.Top() > bottom && state.CurrentState != cfg.Die {
		player.InvulnFrames = 0
		KillPlayer(ecs, playerEntry)
		player.DeathTimer = 0
	}

	if state.CurrentState != cfg.Die {
		return
	}

	player.DeathTimer--
	if player.DeathTimer > 0 {
		return
	}

	lives := components.Lives.Get(playerEntry)
	lives.Lives--
	if lives.Lives <= 0 {
		if sessionEntry, ok := components.Session.First(ecs.World); ok {
			session := components.Session.Get(sessionEntry)
			if session.Status == components.StatusPlaying {
				session.Status = components.StatusGameOver
			}
		}
		return
	}

	respawnPlayer(ecs, playerEntry)
}

func respawnPlayer(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	state := components.State.Get(playerEntry)
	phys := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	obj.Box = physics.NewAABB(player.SpawnX, player.SpawnY, cfg.Player.HalfWidth, cfg.Player.HalfHeight)
	phys.SpeedX = 0
	phys.SpeedY = 0
	phys.Contacts = physics.ContactFlags{}
	player.InvulnFrames = cfg.Player.RespawnInvulnFrames
	player.FacingX = cfg.DirectionRight
	state.Transition(cfg.Idle)

	// Rejoin the broadphase space
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		collider := resolv.NewObject(obj.Box.Left(), obj.Box.Top(), obj.Box.HalfW*2, obj.Box.HalfH*2, tags.ResolvPlayer)
		collider.Data = playerEntry
		components.Space.Get(spaceEntry).Add(collider)
		obj.Collider = collider
	}
}
