package components

import (
	"github.com/automoto/dungeon-platformer/config"
	"github.com/yohamta/donburi"
)

type RunData struct {
	Phase config.GamePhase
	Level int // current level, 1-based

	// Statuses[k-1] is the status of level k.
	Statuses []config.LevelStatus

	// MenuIndex is the cursor of the LevelComplete and LevelSelect overlays.
	MenuIndex int

	// RestartPending asks the controller to reload the current level.
	RestartPending bool
	Quit           bool
}

// Status returns the status of level n, Locked when out of range.
func (r *RunData) Status(n int) config.LevelStatus {
	if n < 1 || n > len(r.Statuses) {
		return config.LevelLocked
	}
	return r.Statuses[n-1]
}

// Selectable reports whether level n may be started from level select.
func (r *RunData) Selectable(n int) bool {
	if n < 1 || n > len(r.Statuses) {
		return false
	}
	return n == 1 || r.Status(n) == config.LevelCompleted || r.Status(n-1) == config.LevelCompleted
}

// Promote raises level n to at least status; statuses never regress.
func (r *RunData) Promote(n int, status config.LevelStatus) {
	if n < 1 || n > len(r.Statuses) {
		return
	}
	if status > r.Statuses[n-1] {
		r.Statuses[n-1] = status
	}
}

var Run = donburi.NewComponentType[RunData]()
