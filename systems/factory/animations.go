package factory

import (
	"github.com/automata-games/tilerun/assets/animations"
	"github.com/automata-games/tilerun/components"
	cfg "github.com/automata-games/tilerun/config"
)

// GenerateAnimations builds the AnimationData component for one sprite
// sheet. Each entity state that has a clip defined for the sheet gets its
// own playback cursor; states without a clip simply render nothing.
func GenerateAnimations(lib *animations.Library, sheetKey string, frameWidth, frameHeight int, initial cfg.StateID) *components.AnimationData {
	animData := &components.AnimationData{
		SheetName:    sheetKey,
		Animations:   make(map[cfg.StateID]*animations.Animation),
		FrameWidth:   frameWidth,
		FrameHeight:  frameHeight,
		CurrentSheet: cfg.StateNone,
	}

	for state, clipName := range cfg.StateToClipName {
		if anim := lib.NewAnimation(sheetKey, clipName); anim != nil {
			animData.Animations[state] = anim
		}
	}

	animData.SetAnimation(initial)
	return animData
}
