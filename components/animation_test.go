package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automata-games/tilerun/assets/animations"
	"github.com/automata-games/tilerun/config"
)

func newTestAnimationData() *AnimationData {
	return &AnimationData{
		SheetName: "player",
		Animations: map[config.StateID]*animations.Animation{
			config.Idle:    animations.NewAnimation(0, 3, 2, false),
			config.Running: animations.NewAnimation(0, 5, 2, false),
		},
	}
}

func TestSetAnimationSwitchesAndRestarts(t *testing.T) {
	a := newTestAnimationData()

	a.SetAnimation(config.Idle)
	require.NotNil(t, a.CurrentAnimation)
	assert.Equal(t, config.Idle, a.CurrentSheet)
	assert.Equal(t, 0, a.CurrentAnimation.Frame())

	// Advance a few frames, then switch; the new clip starts at frame 0
	for i := 0; i < 10; i++ {
		a.CurrentAnimation.Update()
	}
	assert.NotEqual(t, 0, a.CurrentAnimation.Frame())

	a.SetAnimation(config.Running)
	assert.Equal(t, config.Running, a.CurrentSheet)
	assert.Equal(t, 0, a.CurrentAnimation.Frame())
}

func TestSetAnimationSameStateIsNoOp(t *testing.T) {
	a := newTestAnimationData()
	a.SetAnimation(config.Running)

	for i := 0; i < 5; i++ {
		a.CurrentAnimation.Update()
	}
	frame := a.CurrentAnimation.Frame()
	cursor := a.CurrentAnimation

	a.SetAnimation(config.Running)
	assert.Same(t, cursor, a.CurrentAnimation)
	assert.Equal(t, frame, a.CurrentAnimation.Frame())
}

func TestSetAnimationUnknownStateClearsCurrent(t *testing.T) {
	a := newTestAnimationData()
	a.SetAnimation(config.Idle)
	require.NotNil(t, a.CurrentAnimation)

	a.SetAnimation(config.Crouch)
	assert.Nil(t, a.CurrentAnimation)
	assert.Equal(t, config.Crouch, a.CurrentSheet)
}
