package systems

import "github.com/yohamta/donburi"

// System is one step of the simulation tick.
type System func(w donburi.World)

// Pipeline is the per-tick system order: clock, run controller, movement,
// combat, animation, then the win check.
var Pipeline = []System{
	AdvanceClock,
	UpdateRun,
	WithPlayingCheck(UpdatePlayer),
	WithPlayingCheck(UpdateEnemies),
	WithPlayingCheck(UpdatePhysics),
	WithPlayingCheck(UpdateCollisions),
	WithPlayingCheck(UpdateCombat),
	WithPlayingCheck(UpdateAnimations),
	WithPlayingCheck(UpdateDeaths),
	WithPlayingCheck(UpdateCamera),
	WithPlayingCheck(UpdateLevelProgress),
}

// Tick runs the whole pipeline once.
func Tick(w donburi.World) {
	for _, system := range Pipeline {
		system(w)
	}
}

// WithPlayingCheck wraps a system to skip execution outside the Playing phase
func WithPlayingCheck(system System) System {
	return func(w donburi.World) {
		if !IsPlaying(w) {
			return
		}
		system(w)
	}
}
