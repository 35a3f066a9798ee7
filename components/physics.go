package components

import (
	"github.com/yohamta/donburi"

	"github.com/automata-games/tilerun/physics"
)

type PhysicsData struct {
	SpeedX   float64 // px/s
	SpeedY   float64
	Accel    float64
	Gravity  float64
	Friction float64
	MaxSpeed float64
	MaxFall  float64

	// Contacts from the latest resolve step. Recomputed every tick.
	Contacts physics.ContactFlags

	// PrevBottom is the box bottom edge before the latest resolve step.
	// The stomp check uses it to tell descents onto an enemy from side
	// contact.
	PrevBottom float64

	// Struck and Overlaps are the tile events from the latest resolve
	// step, consumed by the interaction system the same tick.
	Struck   []physics.TileOverlap
	Overlaps []physics.TileOverlap
}

var Physics = donburi.NewComponentType[PhysicsData]()
