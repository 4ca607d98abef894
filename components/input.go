package components

import (
	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Push shifts Current into Previous and records a new frame of pressed states.
func (in *InputData) Push(pressed [cfg.ActionCount]bool) {
	in.Previous = in.Current
	in.Current = pressed
}

var Input = donburi.NewComponentType[InputData]()
