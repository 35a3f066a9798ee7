package systems

import (
	"math"

	"github.com/yohamta/donburi/ecs"

	"github.com/automata-games/tilerun/components"
	cfg "github.com/automata-games/tilerun/config"
)

// UpdatePlayer applies control intents and runs the player state machine
// for one tick. Contact flags are from the previous tick's resolve; the
// jump consumes the grounded flag so one press cannot double-fire.
func UpdatePlayer(ecs *ecs.ECS) {
	entry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}

	player := components.Player.Get(entry)
	state := components.State.Get(entry)
	phys := components.Physics.Get(entry)
	intent := components.Intent.Get(entry)
	obj := components.Object.Get(entry)

	if player.InvulnFrames > 0 {
		player.InvulnFrames--
	}

	if state.CurrentState == cfg.Die {
		// No control during the death animation; the hop decays under
		// gravity and the death system handles respawn.
		phys.SpeedX = 0
		return
	}

	dt := cfg.Physics.Dt
	grounded := phys.Contacts.Grounded
	crouching := intent.CrouchHeld && grounded

	if intent.MoveX != 0 {
		player.FacingX = math.Copysign(1, intent.MoveX)
	}

	if crouching || intent.MoveX == 0 {
		applyFriction(phys, dt)
	} else {
		phys.SpeedX += intent.MoveX * phys.Accel * dt
		if phys.SpeedX > phys.MaxSpeed {
			phys.SpeedX = phys.MaxSpeed
		} else if phys.SpeedX < -phys.MaxSpeed {
			phys.SpeedX = -phys.MaxSpeed
		}
	}

	setCrouchBox(obj, crouching)

	if intent.JumpPressed && grounded && !crouching {
		phys.SpeedY = -cfg.Player.JumpImpulse
		phys.Contacts.Grounded = false
		grounded = false
		state.Transition(cfg.Jump)
	}

	if state.CurrentState == cfg.Jump && (phys.SpeedY >= 0 || phys.Contacts.Ceiling) {
		state.Transition(cfg.Fall)
	}

	if grounded {
		switch {
		case crouching:
			state.Transition(cfg.Crouch)
		case phys.SpeedX != 0 || intent.MoveX != 0:
			state.Transition(cfg.Running)
		default:
			state.Transition(cfg.Idle)
		}
	} else if state.CurrentState != cfg.Jump {
		state.Transition(cfg.Fall)
	}
}

func applyFriction(phys *components.PhysicsData, dt float64) {
	step := phys.Friction * dt
	if phys.SpeedX > step {
		phys.SpeedX -= step
	} else if phys.SpeedX < -step {
		phys.SpeedX += step
	} else {
		phys.SpeedX = 0
	}
}

// setCrouchBox swaps the collision height while keeping the bottom edge
// planted, so crouching never pushes the player into the floor.
func setCrouchBox(obj *components.ObjectData, crouching bool) {
	want := cfg.Player.HalfHeight
	if crouching {
		want = cfg.Player.CrouchHalfHeight
	}
	if obj.Box.HalfH == want {
		return
	}
	bottom := obj.Box.Bottom()
	obj.Box.HalfH = want
	obj.Box.Y = bottom - want
}
