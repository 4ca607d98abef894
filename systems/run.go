package systems

import (
	"github.com/automoto/dungeon-platformer/components"
	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/automoto/dungeon-platformer/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// UpdateRun handles phase-level input and transitions:
// Menu -> Playing, LevelComplete -> Playing/LevelSelect/Menu and
// LevelSelect -> Playing/Menu. While Playing it also restarts the level after
// the player has been removed and switches levels on digit actions.
func UpdateRun(w donburi.World) {
	run := GetOrCreateRun(w)
	input := getOrCreateInput(w)

	if GetAction(input, cfg.ActionQuit).JustPressed {
		log.Info("quit requested", "phase", run.Phase)
		run.Quit = true
		return
	}

	switch run.Phase {
	case cfg.PhaseMenu:
		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			StartLevel(w, run.Level)
		}

	case cfg.PhasePlaying:
		if run.RestartPending {
			run.RestartPending = false
			StartLevel(w, run.Level)
			return
		}
		if n := justPressedLevel(input); n > 0 {
			StartLevel(w, n)
		}

	case cfg.PhaseLevelComplete:
		numOptions := len(cfg.Menu.LevelCompleteOptions)
		run.MenuIndex = navigateMenu(input, run.MenuIndex, numOptions)
		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			applyLevelCompleteOption(w, run, cfg.LevelCompleteOption(run.MenuIndex))
		}

	case cfg.PhaseLevelSelect:
		run.MenuIndex = navigateMenu(input, run.MenuIndex, len(run.Statuses))
		switch {
		case GetAction(input, cfg.ActionMenuSelect).JustPressed:
			StartLevel(w, run.MenuIndex+1)
		case GetAction(input, cfg.ActionMenuBack).JustPressed:
			setPhase(run, cfg.PhaseMenu)
		default:
			if n := justPressedLevel(input); n > 0 {
				StartLevel(w, n)
			}
		}
	}
}

// UpdateLevelProgress completes the current level once the win condition
// holds.
func UpdateLevelProgress(w donburi.World) {
	run := GetOrCreateRun(w)
	if run.Phase != cfg.PhasePlaying || run.RestartPending {
		return
	}
	if !LevelCleared(w) {
		return
	}
	CompleteLevel(w)
}

// CompleteLevel marks the current level Completed, unlocks the next one,
// saves progress and shows the level complete overlay.
func CompleteLevel(w donburi.World) {
	run := GetOrCreateRun(w)
	run.Promote(run.Level, cfg.LevelCompleted)
	run.Promote(run.Level+1, cfg.LevelUnlocked)
	SaveProgress(run)

	log.Info("level complete", "level", run.Level)
	setPhase(run, cfg.PhaseLevelComplete)
}

// StartLevel loads level n and switches to Playing if n is selectable.
// It reports whether the level was started.
func StartLevel(w donburi.World, n int) bool {
	run := GetOrCreateRun(w)
	if !run.Selectable(n) {
		log.Debug("level not selectable", "level", n, "status", run.Status(n))
		return false
	}
	if err := LoadLevel(w, n); err != nil {
		log.Error("could not start level", "level", n, "error", err)
		return false
	}
	run.Level = n
	run.RestartPending = false
	run.Promote(n, cfg.LevelUnlocked)
	setPhase(run, cfg.PhasePlaying)
	return true
}

// NextLevel returns the level after n, wrapping to 1 after the last.
func NextLevel(n int) int {
	if n >= cfg.LevelCount() {
		return 1
	}
	return n + 1
}

func applyLevelCompleteOption(w donburi.World, run *components.RunData, option cfg.LevelCompleteOption) {
	switch option {
	case cfg.OptionNextLevel:
		StartLevel(w, NextLevel(run.Level))
	case cfg.OptionLevelSelect:
		UnloadLevel(w)
		setPhase(run, cfg.PhaseLevelSelect)
		run.MenuIndex = run.Level - 1
	case cfg.OptionMainMenu:
		UnloadLevel(w)
		setPhase(run, cfg.PhaseMenu)
	}
}

// navigateMenu moves a cursor with wrap-around.
func navigateMenu(input *components.InputData, index, numOptions int) int {
	if numOptions == 0 {
		return 0
	}
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		index = (index - 1 + numOptions) % numOptions
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		index = (index + 1) % numOptions
	}
	return index
}

func setPhase(run *components.RunData, phase cfg.GamePhase) {
	if run.Phase == phase {
		return
	}
	log.Debug("phase change", "from", run.Phase, "to", phase)
	run.Phase = phase
	run.MenuIndex = 0
}

// GetOrCreateRun returns the singleton Run component, creating if needed
func GetOrCreateRun(w donburi.World) *components.RunData {
	entry, ok := components.Run.First(w)
	if !ok {
		entry = factory.CreateRun(w, cfg.LevelCount())
	}
	return components.Run.Get(entry)
}

// IsPlaying checks if gameplay systems should run this tick
func IsPlaying(w donburi.World) bool {
	return GetOrCreateRun(w).Phase == cfg.PhasePlaying
}
