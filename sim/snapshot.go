package sim

import (
	"github.com/yohamta/donburi"

	"github.com/automata-games/tilerun/components"
	cfg "github.com/automata-games/tilerun/config"
	"github.com/automata-games/tilerun/leveldata"
)

type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindEnemy
	KindPickup
)

// EntitySnapshot is a value copy of one entity's renderable state.
type EntitySnapshot struct {
	Kind     EntityKind
	TypeName string // enemy kind name, empty for player/pickup
	X, Y     float64
	HalfW    float64
	HalfH    float64
	FacingX  float64
	State    cfg.StateID

	// Animation frame reference
	Sheet   string
	Clip    string
	Frame   int
	Flicker bool // invulnerability flicker hint for the renderer
}

// Snapshot is the immutable per-tick view the renderer consumes. All
// slices are fresh copies; the next Step cannot mutate them.
type Snapshot struct {
	Tick   uint64
	Status components.SessionStatus

	Score int
	Coins int
	Lives int

	CameraX float64
	CameraY float64

	Entities []EntitySnapshot

	// TileChanges lists every cell mutated since level load, in order.
	// Renderers repaint these cells over the prerendered background.
	TileChanges []leveldata.TileChange
}

func (s *Simulation) snapshot() Snapshot {
	snap := Snapshot{}

	if sessionEntry, ok := components.Session.First(s.ecs.World); ok {
		session := components.Session.Get(sessionEntry)
		snap.Tick = session.Ticks
		snap.Status = session.Status
	}
	if cameraEntry, ok := components.Camera.First(s.ecs.World); ok {
		camera := components.Camera.Get(cameraEntry)
		snap.CameraX = camera.Position.X
		snap.CameraY = camera.Position.Y
	}
	if levelEntry, ok := components.Level.First(s.ecs.World); ok {
		changed := components.Level.Get(levelEntry).Changed
		snap.TileChanges = append([]leveldata.TileChange(nil), changed...)
	}

	if playerEntry, ok := components.Player.First(s.ecs.World); ok {
		player := components.Player.Get(playerEntry)
		snap.Score = player.Score
		snap.Coins = player.Coins
		snap.Lives = components.Lives.Get(playerEntry).Lives

		es := entitySnapshot(playerEntry, KindPlayer)
		es.FacingX = player.FacingX
		es.Flicker = player.InvulnFrames > 0 &&
			(int(snap.Tick)/cfg.UI.FlickerPeriod)%2 == 0
		snap.Entities = append(snap.Entities, es)
	}

	components.Enemy.Each(s.ecs.World, func(e *donburi.Entry) {
		es := entitySnapshot(e, KindEnemy)
		enemy := components.Enemy.Get(e)
		es.TypeName = enemy.TypeName
		es.FacingX = enemy.DirectionX
		snap.Entities = append(snap.Entities, es)
	})

	components.Pickup.Each(s.ecs.World, func(e *donburi.Entry) {
		es := entitySnapshot(e, KindPickup)
		es.FacingX = components.Pickup.Get(e).DirectionX
		snap.Entities = append(snap.Entities, es)
	})

	return snap
}

func entitySnapshot(e *donburi.Entry, kind EntityKind) EntitySnapshot {
	box := components.Object.Get(e).Box
	state := components.State.Get(e)
	anim := components.Animation.Get(e)

	es := EntitySnapshot{
		Kind:    kind,
		X:       box.X,
		Y:       box.Y,
		HalfW:   box.HalfW,
		HalfH:   box.HalfH,
		FacingX: cfg.DirectionRight,
		State:   state.CurrentState,
		Sheet:   anim.SheetName,
		Clip:    cfg.StateToClipName[anim.CurrentSheet],
	}
	if anim.CurrentAnimation != nil {
		es.Frame = anim.CurrentAnimation.Frame()
	}
	return es
}
