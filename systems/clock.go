package systems

import (
	"time"

	"github.com/automoto/dungeon-platformer/components"
	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/yohamta/donburi"
)

// AdvanceClock moves the simulation clock forward by one fixed step.
func AdvanceClock(w donburi.World) {
	clock := getOrCreateClock(w)
	clock.Now += clock.Step
	clock.Tick++
}

// Now returns the current simulation time.
func Now(w donburi.World) time.Duration {
	return getOrCreateClock(w).Now
}

// StepDuration returns the length of one tick.
func StepDuration(w donburi.World) time.Duration {
	return getOrCreateClock(w).Step
}

func getOrCreateClock(w donburi.World) *components.ClockData {
	entry, ok := components.Clock.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Clock))
		components.Clock.SetValue(entry, components.ClockData{Step: cfg.Simulation.Step})
	}
	return components.Clock.Get(entry)
}
