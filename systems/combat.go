package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automata-games/tilerun/components"
	cfg "github.com/automata-games/tilerun/config"
	"github.com/automata-games/tilerun/tags"
)

// UpdateCombat resolves entity-vs-entity contact through the broadphase
// space: player vs enemy (stomp or hit), player vs pickup (collect) and
// enemy vs enemy (mutual reversal).
func UpdateCombat(ecs *ecs.ECS) {
	playerEntry, ok := components.Player.First(ecs.World)
	if ok {
		playerVsEnemies(ecs, playerEntry)
		playerVsPickups(ecs, playerEntry)
	}
	enemyVsEnemy(ecs)
}

func playerVsEnemies(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	playerState := components.State.Get(playerEntry)
	if playerState.CurrentState == cfg.Die {
		return
	}

	player := components.Player.Get(playerEntry)
	playerObj := components.Object.Get(playerEntry)
	playerPhys := components.Physics.Get(playerEntry)
	if playerObj.Collider == nil {
		return
	}

	check := playerObj.Collider.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return
	}

	for _, o := range check.Objects {
		enemyEntry, ok := o.Data.(*donburi.Entry)
		if !ok || !enemyEntry.Valid() {
			continue
		}
		enemyObj := components.Object.Get(enemyEntry)
		if !playerObj.Box.Overlaps(enemyObj.Box) {
			continue
		}
		enemyState := components.State.Get(enemyEntry)
		if enemyState.CurrentState == cfg.StateStomped {
			continue
		}

		if isStomp(playerObj, playerPhys, enemyEntry) {
			stompEnemy(ecs, enemyEntry)
			playerPhys.SpeedY = -cfg.Player.StompRebound
			playerState.Transition(cfg.Jump)
			player.Score += cfg.Score.Stomp
			continue
		}

		KillPlayer(ecs, playerEntry)
		return
	}
}

// isStomp applies the descent rule: the player's bottom edge had to start
// the step at or above the enemy's top edge, moving downward relative to
// the enemy.
func isStomp(playerObj *components.ObjectData, playerPhys *components.PhysicsData, enemyEntry *donburi.Entry) bool {
	enemyObj := components.Object.Get(enemyEntry)
	enemyPhys := components.Physics.Get(enemyEntry)

	enemyPrevTop := enemyPhys.PrevBottom - enemyObj.Box.HalfH*2
	if playerPhys.PrevBottom > enemyPrevTop+1e-4 {
		return false
	}

	playerDy := playerObj.Box.Bottom() - playerPhys.PrevBottom
	enemyDy := enemyObj.Box.Bottom() - enemyPhys.PrevBottom
	return playerDy-enemyDy >= 0
}

func stompEnemy(ecs *ecs.ECS, enemyEntry *donburi.Entry) {
	enemy := components.Enemy.Get(enemyEntry)
	state := components.State.Get(enemyEntry)
	phys := components.Physics.Get(enemyEntry)
	obj := components.Object.Get(enemyEntry)

	state.Transition(cfg.StateStomped)
	enemy.DeathTimer = enemy.TypeConfig.DeathFrames
	phys.SpeedX = 0

	// Corpses no longer take part in entity contact
	removeFromSpace(ecs, obj)
}

func playerVsPickups(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	playerObj := components.Object.Get(playerEntry)
	if playerObj.Collider == nil {
		return
	}

	check := playerObj.Collider.Check(0, 0, tags.ResolvPickup)
	if check == nil {
		return
	}

	for _, o := range check.Objects {
		pickupEntry, ok := o.Data.(*donburi.Entry)
		if !ok || !pickupEntry.Valid() {
			continue
		}
		pickupObj := components.Object.Get(pickupEntry)
		if !playerObj.Box.Overlaps(pickupObj.Box) {
			continue
		}

		player.Score += cfg.Score.Pickup
		player.InvulnFrames = cfg.Player.InvulnFrames

		removeFromSpace(ecs, pickupObj)
		ecs.World.Remove(pickupEntry.Entity())
	}
}

func enemyVsEnemy(ecs *ecs.ECS) {
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		state := components.State.Get(e)
		if state.CurrentState == cfg.StateStomped {
			return
		}
		enemy := components.Enemy.Get(e)
		obj := components.Object.Get(e)
		if obj.Collider == nil {
			return
		}

		check := obj.Collider.Check(0, 0, tags.ResolvEnemy)
		if check == nil {
			return
		}
		for _, o := range check.Objects {
			otherEntry, ok := o.Data.(*donburi.Entry)
			if !ok || otherEntry == e || !otherEntry.Valid() {
				continue
			}
			otherObj := components.Object.Get(otherEntry)
			if !obj.Box.Overlaps(otherObj.Box) {
				continue
			}
			// Walk away from the other enemy
			if otherObj.Box.X >= obj.Box.X {
				enemy.DirectionX = cfg.DirectionLeft
			} else {
				enemy.DirectionX = cfg.DirectionRight
			}
			break
		}
	})
}

func removeFromSpace(ecs *ecs.ECS, obj *components.ObjectData) {
	if obj.Collider == nil {
		return
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Remove(obj.Collider)
	}
	obj.Collider = nil
}
