package config

// StateID identifies a discrete entity state. Exactly one state is active per
// entity per tick; transitions happen only inside the player and enemy
// systems.
type StateID int

const (
	StateNone StateID = iota

	// Player states
	Idle
	Running
	Jump
	Fall
	Crouch
	Die

	// Enemy states
	StatePatrol
	StateStomped

	// Pickup states
	StateDrift
)

// StateToClipName maps an entity state to the animation clip that plays while
// the state is active. Facing is applied at draw time by mirroring, so left
// and right share a clip.
var StateToClipName = map[StateID]string{
	Idle:         "idle",
	Running:      "run",
	Jump:         "jump",
	Fall:         "fall",
	Crouch:       "crouch",
	Die:          "die",
	StatePatrol:  "walk",
	StateStomped: "stomped",
	StateDrift:   "drift",
}

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Jump:
		return "jump"
	case Fall:
		return "fall"
	case Crouch:
		return "crouch"
	case Die:
		return "die"
	case StatePatrol:
		return "patrol"
	case StateStomped:
		return "stomped"
	case StateDrift:
		return "drift"
	default:
		return "none"
	}
}
