package factory

import (
	"time"

	"github.com/automoto/dungeon-platformer/archetypes"
	"github.com/automoto/dungeon-platformer/components"
	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/yohamta/donburi"
)

// CreateRun spawns the run state with level 1 unlocked and the rest locked.
func CreateRun(w donburi.World, levelCount int) *donburi.Entry {
	run := archetypes.Run.Spawn(w)
	statuses := make([]cfg.LevelStatus, levelCount)
	if levelCount > 0 {
		statuses[0] = cfg.LevelUnlocked
	}
	components.Run.SetValue(run, components.RunData{
		Phase:    cfg.PhaseMenu,
		Level:    1,
		Statuses: statuses,
	})
	return run
}

func CreateClock(w donburi.World, step time.Duration) *donburi.Entry {
	clock := archetypes.Clock.Spawn(w)
	components.Clock.SetValue(clock, components.ClockData{Step: step})
	return clock
}

func CreateInput(w donburi.World) *donburi.Entry {
	return archetypes.Input.Spawn(w)
}
