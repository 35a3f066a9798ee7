package ui

import (
	cfg "github.com/automata-games/tilerun/config"
	"github.com/automata-games/tilerun/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputPoller translates raw keyboard and gamepad state into simulation
// intents. It keeps the previous frame's action states so edge-triggered
// actions (jump, menu select) fire exactly once per press.
type InputPoller struct {
	current  [cfg.ActionCount]bool
	previous [cfg.ActionCount]bool
	primed   bool

	// Reused across frames to avoid per-frame allocations
	gamepadIDs []ebiten.GamepadID
}

func NewInputPoller() *InputPoller {
	return &InputPoller{}
}

// Poll reads device state for this frame. Call once per host frame,
// before Pressed/JustPressed or Intents.
func (p *InputPoller) Poll() {
	p.previous = p.current
	p.current = [cfg.ActionCount]bool{}

	p.gamepadIDs = ebiten.AppendGamepadIDs(p.gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				p.current[actionID] = true
			}
		}

		for _, gpID := range p.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					p.current[actionID] = true
				}
			}
		}
	}

	p.mergeAnalogSticks()

	// Keys already held when the poller starts must not read as fresh
	// presses, or a press from the previous scene leaks into this one.
	if !p.primed {
		p.primed = true
		p.previous = p.current
	}
}

// mergeAnalogSticks folds the left stick into the directional actions.
func (p *InputPoller) mergeAnalogSticks() {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range p.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			p.current[cfg.ActionMoveLeft] = true
		}
		if horizontal > deadzone {
			p.current[cfg.ActionMoveRight] = true
		}
		if vertical < -deadzone {
			p.current[cfg.ActionMenuUp] = true
		}
		if vertical > deadzone {
			p.current[cfg.ActionCrouch] = true
			p.current[cfg.ActionMenuDown] = true
		}
	}
}

// Pressed reports whether the action is held this frame.
func (p *InputPoller) Pressed(id cfg.ActionID) bool {
	return p.current[id]
}

// JustPressed reports whether the action went down this frame.
func (p *InputPoller) JustPressed(id cfg.ActionID) bool {
	return p.current[id] && !p.previous[id]
}

// Intents maps the polled actions onto the simulation's input contract.
// Opposite directions cancel out rather than favoring one side.
func (p *InputPoller) Intents() sim.Intents {
	var moveX float64
	if p.current[cfg.ActionMoveLeft] {
		moveX -= 1
	}
	if p.current[cfg.ActionMoveRight] {
		moveX += 1
	}

	return sim.Intents{
		MoveX:       moveX,
		JumpPressed: p.JustPressed(cfg.ActionJump),
		JumpHeld:    p.current[cfg.ActionJump],
		CrouchHeld:  p.current[cfg.ActionCrouch],
	}
}
