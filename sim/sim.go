// Package sim owns the fixed-timestep simulation: the ECS world, the
// per-tick system pipeline and the immutable snapshots handed to the
// renderer. All entity and tile state is mutated only inside Step.
package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automata-games/tilerun/assets/animations"
	"github.com/automata-games/tilerun/components"
	cfg "github.com/automata-games/tilerun/config"
	"github.com/automata-games/tilerun/leveldata"
	"github.com/automata-games/tilerun/systems"
	"github.com/automata-games/tilerun/systems/factory"
)

// ErrNoLevel reports a step against an unloaded simulation: the caller
// asked to advance an entity roster whose level was never loaded.
var ErrNoLevel = errors.New("sim: no level loaded")

// Intents is the per-tick control input. JumpPressed is edge-triggered;
// the host input poller and Advance guarantee it is true for exactly one
// step per press.
type Intents struct {
	MoveX       float64
	JumpPressed bool
	JumpHeld    bool
	CrouchHeld  bool
}

type Simulation struct {
	ecs         *ecs.ECS
	clips       *animations.Library
	level       *leveldata.Level
	accumulator float64

	// pendingJump latches a jump edge across zero-step Advance calls so
	// a tap is never lost to accumulator remainder.
	pendingJump bool
}

func New(clips *animations.Library) *Simulation {
	return &Simulation{clips: clips}
}

func newPipeline() *ecs.ECS {
	world := ecs.NewECS(donburi.NewWorld())
	world.AddSystem(systems.UpdatePlayer)
	world.AddSystem(systems.UpdateEnemy)
	world.AddSystem(systems.UpdatePickup)
	world.AddSystem(systems.UpdatePhysics)
	world.AddSystem(systems.UpdateCollision)
	world.AddSystem(systems.UpdateInteractions)
	world.AddSystem(systems.UpdateCombat)
	world.AddSystem(systems.UpdateDeath)
	world.AddSystem(systems.UpdateAnimation)
	world.AddSystem(systems.UpdateCamera)
	return world
}

// LoadLevel replaces the world with a fresh one built from the level's
// grid and spawn roster. A roster naming an unknown enemy kind fails with
// a LevelLoadError and leaves the previous level untouched.
func (s *Simulation) LoadLevel(level *leveldata.Level) error {
	for _, spawn := range level.EnemySpawns {
		if _, ok := cfg.Enemy.Types[spawn.Kind]; !ok {
			return &leveldata.LevelLoadError{
				Path: level.Name, Col: -1, Row: -1,
				Msg: fmt.Sprintf("roster references unknown enemy kind %q", spawn.Kind),
			}
		}
	}

	grid := level.Grid
	world := newPipeline()

	factory.CreateSpace(world,
		int(grid.WidthPx()), int(grid.HeightPx()),
		int(leveldata.TileSize), int(leveldata.TileSize))

	levelEntry := factory.CreateLevel(world, level)
	components.Level.Get(levelEntry).Clips = s.clips

	factory.CreatePlayer(world, s.clips, level.PlayerSpawn.X, level.PlayerSpawn.Y)
	for _, spawn := range level.EnemySpawns {
		if _, err := factory.CreateEnemy(world, s.clips, spawn.X, spawn.Y, spawn.Kind); err != nil {
			return &leveldata.LevelLoadError{Path: level.Name, Col: -1, Row: -1, Msg: err.Error()}
		}
	}

	factory.CreateCamera(world, level.PlayerSpawn.X, level.PlayerSpawn.Y)
	factory.CreateSession(world)

	s.ecs = world
	s.level = level
	s.accumulator = 0
	s.pendingJump = false
	return nil
}

// Step advances exactly one fixed tick and returns the resulting
// snapshot.
func (s *Simulation) Step(intents Intents) (Snapshot, error) {
	if s.level == nil {
		return Snapshot{}, ErrNoLevel
	}

	if playerEntry, ok := components.Player.First(s.ecs.World); ok {
		components.Intent.SetValue(playerEntry, components.IntentData{
			MoveX:       intents.MoveX,
			JumpPressed: intents.JumpPressed,
			JumpHeld:    intents.JumpHeld,
			CrouchHeld:  intents.CrouchHeld,
		})
	}

	s.ecs.Update()

	if sessionEntry, ok := components.Session.First(s.ecs.World); ok {
		components.Session.Get(sessionEntry).Ticks++
	}

	return s.snapshot(), nil
}

// Advance drains elapsed wall time through the fixed-step accumulator,
// stepping zero or more times. Leftover sub-step time carries over; a
// stalled host is capped at MaxStepsPerFrame catch-up steps so the
// accumulator cannot spiral. Returns the latest snapshot and the number
// of steps taken.
func (s *Simulation) Advance(elapsed float64, intents Intents) (Snapshot, int, error) {
	if s.level == nil {
		return Snapshot{}, 0, ErrNoLevel
	}

	if intents.JumpPressed {
		s.pendingJump = true
	}

	s.accumulator += elapsed
	steps := 0
	for s.accumulator >= cfg.Physics.Dt && steps < cfg.Physics.MaxStepsPerFrame {
		stepIntents := intents
		// The latched jump edge fires on the first catch-up step only;
		// it stays pending across frames too short to produce a step.
		stepIntents.JumpPressed = s.pendingJump
		if _, err := s.Step(stepIntents); err != nil {
			return Snapshot{}, steps, err
		}
		s.pendingJump = false
		s.accumulator -= cfg.Physics.Dt
		steps++
	}
	if s.accumulator >= cfg.Physics.Dt {
		// Hit the catch-up cap; drop the backlog, keep the fraction
		s.accumulator = math.Mod(s.accumulator, cfg.Physics.Dt)
	}

	return s.snapshot(), steps, nil
}
