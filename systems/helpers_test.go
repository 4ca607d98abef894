package systems

import (
	"testing"
	"time"

	"github.com/automoto/dungeon-platformer/components"
	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/automoto/dungeon-platformer/systems/factory"
	"github.com/automoto/dungeon-platformer/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

const testGroundY = 600

// flatLevel is a level with no platforms and the player standing on the
// ground at x=100.
func flatLevel(enemies ...cfg.EnemySpawn) cfg.LevelDef {
	return cfg.LevelDef{
		Number:      1,
		WorldWidth:  2000,
		GroundY:     testGroundY,
		PlayerSpawn: math.Vec2{X: 100, Y: testGroundY - cfg.Player.CollisionHeight},
		Enemies:     enemies,
	}
}

// orcAt places a scale-1 orc on the ground with its body center at centerX.
func orcAt(centerX float64) cfg.EnemySpawn {
	et := cfg.Enemy.Types[cfg.SpeciesOrc]
	return cfg.EnemySpawn{
		Species: cfg.SpeciesOrc,
		X:       centerX - et.CollisionWidth/2,
		Y:       testGroundY - et.CollisionHeight,
		Scale:   1,
	}
}

func newTestWorld(t *testing.T, def cfg.LevelDef) donburi.World {
	t.Helper()
	w := donburi.NewWorld()
	factory.CreateClock(w, cfg.Simulation.Step)
	factory.CreateInput(w)
	factory.CreateCamera(w)
	factory.CreateRun(w, cfg.LevelCount())
	require.NoError(t, LoadLevelDef(w, def))

	run := GetOrCreateRun(w)
	run.Phase = cfg.PhasePlaying
	run.Level = def.Number
	run.Promote(def.Number, cfg.LevelUnlocked)
	return w
}

func mustPlayer(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	e, ok := tags.Player.First(w)
	require.True(t, ok, "no player in world")
	return e
}

func mustEnemy(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	e, ok := tags.Enemy.First(w)
	require.True(t, ok, "no enemy in world")
	return e
}

// press records one frame of input with the given actions held.
func press(w donburi.World, actions ...cfg.ActionID) {
	var pressed [cfg.ActionCount]bool
	for _, a := range actions {
		pressed[a] = true
	}
	PushInput(w, pressed)
}

// advanceClock moves simulation time without running any system.
func advanceClock(w donburi.World, d time.Duration) {
	getOrCreateClock(w).Now += d
}

// stepFrame advances time by e's frame interval and runs the animation system.
func stepFrame(w donburi.World, e *donburi.Entry) {
	advanceClock(w, components.Animation.Get(e).Layout.Interval)
	UpdateAnimations(w)
}

// overrideEnemyType swaps the orc configuration for the duration of a test.
func overrideEnemyType(t *testing.T, mutate func(et *cfg.EnemyTypeConfig)) {
	t.Helper()
	original := cfg.Enemy.Types[cfg.SpeciesOrc]
	changed := original
	mutate(&changed)
	cfg.Enemy.Types[cfg.SpeciesOrc] = changed
	t.Cleanup(func() {
		cfg.Enemy.Types[cfg.SpeciesOrc] = original
	})
}

func count[T any](w donburi.World, ct *donburi.ComponentType[T]) int {
	n := 0
	ct.Each(w, func(*donburi.Entry) { n++ })
	return n
}
