package config

// StateID is the logical and visual state of an actor.
type StateID int

const (
	StateNone StateID = iota

	Idle
	Walk
	Attack
	Hit
	Death

	stateCount
)

var stateNames = [stateCount]string{
	StateNone: "none",
	Idle:      "idle",
	Walk:      "walk",
	Attack:    "attack",
	Hit:       "hit",
	Death:     "death",
}

// Valid reports whether s names one of the actor states.
func (s StateID) Valid() bool {
	return s > StateNone && s < stateCount
}

func (s StateID) String() string {
	if s < 0 || s >= stateCount {
		return "unknown"
	}
	return stateNames[s]
}

// GamePhase is the top-level run state.
type GamePhase int

const (
	PhaseMenu GamePhase = iota
	PhasePlaying
	PhaseLevelComplete
	PhaseLevelSelect
)

func (p GamePhase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseLevelSelect:
		return "level_select"
	}
	return "unknown"
}

// LevelStatus only ever moves forward: Locked < Unlocked < Completed.
type LevelStatus int

const (
	LevelLocked LevelStatus = iota
	LevelUnlocked
	LevelCompleted
)

func (s LevelStatus) String() string {
	switch s {
	case LevelLocked:
		return "locked"
	case LevelUnlocked:
		return "unlocked"
	case LevelCompleted:
		return "completed"
	}
	return "unknown"
}

// LevelCompleteOption indexes Menu.LevelCompleteOptions.
type LevelCompleteOption int

const (
	OptionNextLevel LevelCompleteOption = iota
	OptionLevelSelect
	OptionMainMenu
)
