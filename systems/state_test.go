package systems

import (
	"testing"

	"github.com/automoto/dungeon-platformer/components"
	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetStateSameStateKeepsCursor(t *testing.T) {
	w := newTestWorld(t, flatLevel())
	player := mustPlayer(t, w)

	require.True(t, SetState(player, cfg.Walk, Now(w)))
	stepFrame(w, player)
	stepFrame(w, player)
	anim := components.Animation.Get(player)
	require.Equal(t, 2, anim.Frame())

	assert.False(t, SetState(player, cfg.Walk, Now(w)))
	assert.Equal(t, 2, anim.Frame())

	assert.True(t, SetState(player, cfg.Idle, Now(w)))
	assert.Equal(t, 0, anim.Frame())
	assert.Equal(t, cfg.Idle, anim.CurrentSheet)
}

func TestSetStateRecordsTransition(t *testing.T) {
	w := newTestWorld(t, flatLevel())
	player := mustPlayer(t, w)
	advanceClock(w, 500*cfg.Simulation.Step)

	require.True(t, SetState(player, cfg.Walk, Now(w)))
	state := components.State.Get(player)
	assert.Equal(t, cfg.Walk, state.CurrentState)
	assert.Equal(t, cfg.Idle, state.PreviousState)
	assert.Equal(t, Now(w), state.EnteredAt)
}

func TestSetStateIgnoresInvalidStates(t *testing.T) {
	w := newTestWorld(t, flatLevel())
	player := mustPlayer(t, w)
	require.True(t, SetState(player, cfg.Walk, Now(w)))
	stepFrame(w, player)

	for _, s := range []cfg.StateID{cfg.StateNone, cfg.StateID(-1), cfg.StateID(99)} {
		assert.False(t, SetState(player, s, Now(w)), "state %d", s)
	}
	assert.Equal(t, cfg.Walk, components.State.Get(player).CurrentState)
	assert.Equal(t, 1, components.Animation.Get(player).Frame())
}

func TestSetStateEntryEffects(t *testing.T) {
	w := newTestWorld(t, flatLevel(orcAt(1000)))
	enemy := mustEnemy(t, w)
	state := components.State.Get(enemy)

	require.True(t, SetState(enemy, cfg.Attack, Now(w)))
	assert.True(t, state.Attacking)
	assert.False(t, components.Enemy.Get(enemy).SwingResolved)

	// Hit preempts Attack and arms the attack cooldown
	advanceClock(w, cfg.Simulation.Step)
	require.True(t, SetState(enemy, cfg.Hit, Now(w)))
	assert.False(t, state.Attacking)
	assert.True(t, state.Flinching)
	assert.True(t, components.Enemy.Get(enemy).CooldownArmed)
	assert.Equal(t, Now(w), components.Enemy.Get(enemy).LastAttackEnd)

	require.True(t, SetState(enemy, cfg.Idle, Now(w)))
	assert.False(t, state.Flinching)
}

func TestDeathIsTerminal(t *testing.T) {
	w := newTestWorld(t, flatLevel())
	player := mustPlayer(t, w)

	require.True(t, SetState(player, cfg.Death, Now(w)))
	assert.True(t, player.HasComponent(components.Death))
	assert.Equal(t, 0, components.Health.Get(player).Current)

	for _, s := range []cfg.StateID{cfg.Idle, cfg.Walk, cfg.Attack, cfg.Hit} {
		assert.False(t, SetState(player, s, Now(w)), "state %s", s)
	}
	assert.Equal(t, cfg.Death, components.State.Get(player).CurrentState)
}
