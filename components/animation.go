package components

import (
	"github.com/yohamta/donburi"

	"github.com/automata-games/tilerun/assets/animations"
	"github.com/automata-games/tilerun/config"
)

// AnimationData drives frame selection for one entity. Animations holds a
// playback cursor per state; SheetName picks the sprite sheet directory
// the renderer loads strips from.
type AnimationData struct {
	SheetName        string
	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
	FrameWidth       int
	FrameHeight      int
	Animations       map[config.StateID]*animations.Animation
}

// SetAnimation switches playback to the clip for the given state. Setting
// the state that is already playing is a no-op so the current frame and
// tick counter are preserved.
func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentSheet == state && (a.CurrentAnimation != nil || a.Animations[state] == nil) {
		return
	}

	anim, ok := a.Animations[state]
	if ok {
		if a.CurrentAnimation != anim {
			a.CurrentAnimation = anim
			a.CurrentSheet = state
			a.CurrentAnimation.Restart()
		}
	} else {
		// No animation for this state, clear current
		a.CurrentAnimation = nil
		a.CurrentSheet = state
	}
}

var Animation = donburi.NewComponentType[AnimationData]()
