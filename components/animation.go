package components

import (
	"time"

	"github.com/automoto/dungeon-platformer/assets/animations"
	"github.com/automoto/dungeon-platformer/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Layout           *config.SpeciesAnimations // shared, never mutated per actor
	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
}

// SetAnimation points the cursor at state's frames, restarting at frame 0.
// It reports false and changes nothing when already on state or when the
// species has no frames for it.
func (a *AnimationData) SetAnimation(state config.StateID, now time.Duration) bool {
	if a.CurrentSheet == state && a.CurrentAnimation != nil {
		return false
	}
	if !a.Layout.Has(state) {
		return false
	}
	a.CurrentAnimation = animations.NewAnimation(a.Layout.FrameCount(state), a.Layout.Interval, now)
	a.CurrentAnimation.FreezeOnComplete = state == config.Death
	a.CurrentSheet = state
	return true
}

// Frame returns the current frame index, or 0 before any animation is set.
func (a *AnimationData) Frame() int {
	if a.CurrentAnimation == nil {
		return 0
	}
	return a.CurrentAnimation.Frame()
}

// FrameCount returns the number of frames of the current sheet.
func (a *AnimationData) FrameCount() int {
	return a.Layout.FrameCount(a.CurrentSheet)
}

var Animation = donburi.NewComponentType[AnimationData]()
