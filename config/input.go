package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionAttack
	ActionQuit
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionSelectLevel1
	ActionSelectLevel2
	ActionSelectLevel3
	ActionSelectLevel4
	ActionSelectLevel5
	ActionSelectLevel6
	ActionSelectLevel7
	ActionSelectLevel8
	ActionSelectLevel9
	ActionCount // Must be last - used for array sizing
)

// MaxSelectableLevel is the highest level reachable with a digit action.
const MaxSelectableLevel = 9

// SelectLevelAction returns the digit action for level n (1..9).
func SelectLevelAction(n int) ActionID {
	if n < 1 || n > MaxSelectableLevel {
		return ActionNone
	}
	return ActionSelectLevel1 + ActionID(n-1)
}
