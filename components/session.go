package components

import "github.com/yohamta/donburi"

// SessionStatus is the terminal state of a playthrough.
type SessionStatus int

const (
	StatusPlaying SessionStatus = iota
	StatusGameOver
	StatusLevelComplete
)

func (s SessionStatus) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "game_over"
	case StatusLevelComplete:
		return "level_complete"
	default:
		return "unknown"
	}
}

// SessionData tracks the run as a whole. Ticks counts fixed steps since
// the level was loaded.
type SessionData struct {
	Status SessionStatus
	Ticks  uint64
}

var Session = donburi.NewComponentType[SessionData]()
