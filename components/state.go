package components

import (
	"github.com/automata-games/tilerun/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
}

// Transition switches states. A no-op when the entity is already in the
// target state.
func (s *StateData) Transition(next config.StateID) {
	if s.CurrentState == next {
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = next
}

var State = donburi.NewComponentType[StateData]()
