package systems

import (
	"github.com/automoto/dungeon-platformer/components"
	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/yohamta/donburi"
)

// PushInput records this frame's pressed actions. The device layer calls it
// once per frame before the pipeline runs.
func PushInput(w donburi.World, pressed [cfg.ActionCount]bool) {
	getOrCreateInput(w).Push(pressed)
}

func getOrCreateInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// justPressedLevel returns the level whose digit was pressed this frame, or 0.
func justPressedLevel(input *components.InputData) int {
	for n := 1; n <= cfg.MaxSelectableLevel; n++ {
		if GetAction(input, cfg.SelectLevelAction(n)).JustPressed {
			return n
		}
	}
	return 0
}
