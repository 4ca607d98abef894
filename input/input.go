package input

import (
	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/automoto/dungeon-platformer/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Binding represents the keys and buttons bound to an action
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings holds all input mappings
var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionJump: {
		Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyW},
		// A / Cross button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionAttack: {
		Keys: []ebiten.Key{ebiten.KeyF, ebiten.KeyJ},
		// X / Square button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	cfg.ActionQuit: {
		Keys: []ebiten.Key{ebiten.KeyEscape},
	},
	cfg.ActionMenuUp: {
		Keys:                   []ebiten.Key{ebiten.KeyUp},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	cfg.ActionMenuDown: {
		Keys:                   []ebiten.Key{ebiten.KeyDown},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	cfg.ActionMenuSelect: {
		Keys:                   []ebiten.Key{ebiten.KeyEnter},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionMenuBack: {
		Keys:                   []ebiten.Key{ebiten.KeyBackspace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
	},
	cfg.ActionSelectLevel1: {Keys: []ebiten.Key{ebiten.KeyDigit1}},
	cfg.ActionSelectLevel2: {Keys: []ebiten.Key{ebiten.KeyDigit2}},
	cfg.ActionSelectLevel3: {Keys: []ebiten.Key{ebiten.KeyDigit3}},
	cfg.ActionSelectLevel4: {Keys: []ebiten.Key{ebiten.KeyDigit4}},
	cfg.ActionSelectLevel5: {Keys: []ebiten.Key{ebiten.KeyDigit5}},
	cfg.ActionSelectLevel6: {Keys: []ebiten.Key{ebiten.KeyDigit6}},
	cfg.ActionSelectLevel7: {Keys: []ebiten.Key{ebiten.KeyDigit7}},
	cfg.ActionSelectLevel8: {Keys: []ebiten.Key{ebiten.KeyDigit8}},
	cfg.ActionSelectLevel9: {Keys: []ebiten.Key{ebiten.KeyDigit9}},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Poll returns the pressed state of every action this frame, merging the
// keyboard and all standard-layout gamepads.
func Poll() [cfg.ActionCount]bool {
	var pressed [cfg.ActionCount]bool
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					pressed[actionID] = true
				}
			}
		}
	}
	return pressed
}

// Update polls input and stores it for the rest of the pipeline.
// Must run BEFORE every other system.
func Update(e *ecs.ECS) {
	systems.PushInput(e.World, Poll())
}
