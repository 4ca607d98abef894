package systems

import (
	"testing"

	"github.com/automoto/dungeon-platformer/components"
	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/automoto/dungeon-platformer/systems/factory"
	"github.com/automoto/dungeon-platformer/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// newMenuWorld is a world in its initial state: main menu, nothing loaded.
func newMenuWorld() donburi.World {
	w := donburi.NewWorld()
	factory.CreateClock(w, cfg.Simulation.Step)
	factory.CreateInput(w)
	factory.CreateCamera(w)
	factory.CreateRun(w, cfg.LevelCount())
	return w
}

// tap presses action for exactly one tick.
func tap(w donburi.World, action cfg.ActionID) {
	press(w)
	press(w, action)
	Tick(w)
}

// atExit puts the player at the world's right edge.
func atExit(t *testing.T, w donburi.World) {
	t.Helper()
	placeBody(mustPlayer(t, w), 2000-cfg.Player.CollisionWidth, testGroundY-cfg.Player.CollisionHeight)
}

func TestLevelNotCompleteWhileEnemyAlive(t *testing.T) {
	w := newTestWorld(t, flatLevel(orcAt(200)))
	atExit(t, w)

	Tick(w)

	run := GetOrCreateRun(w)
	assert.Equal(t, cfg.PhasePlaying, run.Phase)
	assert.Equal(t, cfg.LevelUnlocked, run.Status(1))
}

func TestLevelCompletesAtExitWithNoEnemies(t *testing.T) {
	w := newTestWorld(t, flatLevel())
	atExit(t, w)

	Tick(w)

	run := GetOrCreateRun(w)
	assert.Equal(t, cfg.PhaseLevelComplete, run.Phase)
	assert.Equal(t, cfg.LevelCompleted, run.Status(1))
	assert.Equal(t, cfg.LevelUnlocked, run.Status(2))
	assert.Equal(t, 0, run.MenuIndex)
}

func TestLevelNotCompleteAwayFromExit(t *testing.T) {
	w := newTestWorld(t, flatLevel())

	Tick(w)

	assert.Equal(t, cfg.PhasePlaying, GetOrCreateRun(w).Phase)
}

func TestDeadEnemiesDoNotBlockCompletion(t *testing.T) {
	w := newTestWorld(t, flatLevel(orcAt(200)))
	enemy := mustEnemy(t, w)
	require.True(t, TakeDamage(enemy, 1000, Now(w)))
	atExit(t, w)

	Tick(w)

	assert.Equal(t, cfg.PhaseLevelComplete, GetOrCreateRun(w).Phase)
}

func TestDeadPlayerCannotCompleteLevel(t *testing.T) {
	w := newTestWorld(t, flatLevel())
	atExit(t, w)
	require.True(t, TakeDamage(mustPlayer(t, w), 1000, Now(w)))

	assert.False(t, LevelCleared(w))
}

func TestMenuSelectStartsLevel(t *testing.T) {
	w := newMenuWorld()
	require.False(t, IsPlaying(w))

	tap(w, cfg.ActionMenuSelect)

	run := GetOrCreateRun(w)
	assert.Equal(t, cfg.PhasePlaying, run.Phase)
	assert.Equal(t, 1, run.Level)
	level, ok := components.Level.First(w)
	require.True(t, ok)
	assert.Equal(t, 1, components.Level.Get(level).Def.Number)
	_, ok = tags.Player.First(w)
	assert.True(t, ok)
}

func TestGameplayDoesNotRunOutsidePlaying(t *testing.T) {
	w := newMenuWorld()
	require.NoError(t, LoadLevelDef(w, flatLevel()))
	player := mustPlayer(t, w)
	obj := components.Object.Get(player)
	startY := obj.Y

	for i := 0; i < 10; i++ {
		Tick(w)
	}

	assert.Equal(t, startY, obj.Y)
	assert.Equal(t, 0.0, components.Physics.Get(player).SpeedY)
}

func TestStartLevelRequiresSelectable(t *testing.T) {
	w := newMenuWorld()

	assert.False(t, StartLevel(w, 3))
	assert.False(t, StartLevel(w, 0))
	assert.False(t, StartLevel(w, cfg.LevelCount()+1))
	assert.Equal(t, cfg.PhaseMenu, GetOrCreateRun(w).Phase)

	assert.True(t, StartLevel(w, 1))
	assert.Equal(t, cfg.PhasePlaying, GetOrCreateRun(w).Phase)
}

func TestLevelCompleteNextLevel(t *testing.T) {
	w := newTestWorld(t, flatLevel())
	CompleteLevel(w)
	run := GetOrCreateRun(w)
	require.Equal(t, cfg.PhaseLevelComplete, run.Phase)
	require.Equal(t, int(cfg.OptionNextLevel), run.MenuIndex)

	tap(w, cfg.ActionMenuSelect)

	assert.Equal(t, cfg.PhasePlaying, run.Phase)
	assert.Equal(t, 2, run.Level)
	level, ok := components.Level.First(w)
	require.True(t, ok)
	assert.Equal(t, 2, components.Level.Get(level).Def.Number)
}

func TestLevelCompleteLevelSelectAndBack(t *testing.T) {
	w := newTestWorld(t, flatLevel())
	CompleteLevel(w)
	run := GetOrCreateRun(w)

	tap(w, cfg.ActionMenuDown)
	require.Equal(t, int(cfg.OptionLevelSelect), run.MenuIndex)
	tap(w, cfg.ActionMenuSelect)

	assert.Equal(t, cfg.PhaseLevelSelect, run.Phase)
	assert.Equal(t, 0, run.MenuIndex)
	_, ok := components.Level.First(w)
	assert.False(t, ok, "level select should unload the level")

	tap(w, cfg.ActionMenuBack)
	assert.Equal(t, cfg.PhaseMenu, run.Phase)
}

func TestLevelCompleteMainMenu(t *testing.T) {
	w := newTestWorld(t, flatLevel())
	CompleteLevel(w)
	run := GetOrCreateRun(w)

	tap(w, cfg.ActionMenuUp) // wraps to the last option
	require.Equal(t, int(cfg.OptionMainMenu), run.MenuIndex)
	tap(w, cfg.ActionMenuSelect)

	assert.Equal(t, cfg.PhaseMenu, run.Phase)
	_, ok := tags.Player.First(w)
	assert.False(t, ok)
}

func TestLevelSelectSkipsLockedLevels(t *testing.T) {
	w := newMenuWorld()
	run := GetOrCreateRun(w)
	run.Phase = cfg.PhaseLevelSelect
	run.MenuIndex = 2

	tap(w, cfg.ActionMenuSelect)
	assert.Equal(t, cfg.PhaseLevelSelect, run.Phase)

	tap(w, cfg.ActionMenuDown) // wraps to level 1
	require.Equal(t, 0, run.MenuIndex)
	tap(w, cfg.ActionMenuSelect)
	assert.Equal(t, cfg.PhasePlaying, run.Phase)
	assert.Equal(t, 1, run.Level)
}

func TestDigitSwitchesLevelWhilePlaying(t *testing.T) {
	w := newTestWorld(t, flatLevel())
	run := GetOrCreateRun(w)

	tap(w, cfg.SelectLevelAction(2))
	assert.Equal(t, 1, run.Level, "level 2 is locked")

	run.Promote(1, cfg.LevelCompleted)
	tap(w, cfg.SelectLevelAction(2))
	assert.Equal(t, 2, run.Level)
	assert.Equal(t, cfg.PhasePlaying, run.Phase)
}

func TestQuitRequest(t *testing.T) {
	w := newMenuWorld()

	tap(w, cfg.ActionQuit)

	assert.True(t, GetOrCreateRun(w).Quit)
}

func TestNextLevelWraps(t *testing.T) {
	assert.Equal(t, 2, NextLevel(1))
	assert.Equal(t, 1, NextLevel(cfg.LevelCount()))
}

func TestLoadLevelRejectsUnknownLevel(t *testing.T) {
	w := newMenuWorld()
	assert.Error(t, LoadLevel(w, 0))
	assert.Error(t, LoadLevel(w, cfg.LevelCount()+1))
	assert.Error(t, LoadLevelDef(w, cfg.LevelDef{Number: 7}))
}

func TestLoadLevelReplacesEntities(t *testing.T) {
	w := newMenuWorld()
	require.NoError(t, LoadLevel(w, 1))
	require.NoError(t, LoadLevel(w, 2))

	def, err := cfg.GetLevel(2)
	require.NoError(t, err)
	assert.Equal(t, 1, count(w, tags.Player))
	assert.Equal(t, len(def.Enemies), count(w, tags.Enemy))
	assert.Equal(t, len(def.Platforms), count(w, tags.Platform))
	assert.Equal(t, 1, count(w, components.Space))
}

func TestApplyProgressOnlyMovesForward(t *testing.T) {
	w := newMenuWorld()
	run := GetOrCreateRun(w)
	run.Promote(1, cfg.LevelCompleted)

	ApplyProgress(w, &SavedProgress{
		Level:    2,
		Statuses: []cfg.LevelStatus{cfg.LevelLocked, cfg.LevelUnlocked},
	})

	assert.Equal(t, cfg.LevelCompleted, run.Status(1))
	assert.Equal(t, cfg.LevelUnlocked, run.Status(2))
	assert.Equal(t, 2, run.Level)

	ApplyProgress(w, &SavedProgress{Level: 3})
	assert.Equal(t, 2, run.Level, "level 3 is not selectable")
}
