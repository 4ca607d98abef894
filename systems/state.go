package systems

import (
	"time"

	"github.com/automoto/dungeon-platformer/components"
	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// SetState moves an actor to next and applies the entry side effects. It
// reports whether a transition happened: a request for the current state, a
// state the species cannot display, or any request once the actor is in
// Death leaves everything untouched.
func SetState(e *donburi.Entry, next cfg.StateID, now time.Duration) bool {
	state := components.State.Get(e)
	if next == state.CurrentState || state.CurrentState == cfg.Death {
		return false
	}
	anim := components.Animation.Get(e)
	if !anim.Layout.Has(next) {
		log.Debug("ignoring state without frames", "state", next)
		return false
	}

	if !anim.SetAnimation(next, now) {
		anim.CurrentAnimation.Restart(now)
	}

	prev := state.CurrentState
	state.PreviousState = prev
	state.CurrentState = next
	state.EnteredAt = now

	if prev == cfg.Attack {
		endAttack(e, now)
	}
	if prev == cfg.Hit {
		state.Flinching = false
	}

	switch next {
	case cfg.Death:
		enterDeath(e)
	case cfg.Hit:
		state.Flinching = true
	case cfg.Attack:
		beginAttack(e, now)
	}
	return true
}

func beginAttack(e *donburi.Entry, now time.Duration) {
	state := components.State.Get(e)
	state.Attacking = true
	state.Flinching = false

	if e.HasComponent(components.Enemy) {
		components.Enemy.Get(e).SwingResolved = false
	}
	if e.HasComponent(components.Player) {
		player := components.Player.Get(e)
		player.LastAttackStart = now
		player.HasAttacked = true
		clear(components.MeleeAttack.Get(e).HitEntities)
	}
	if e.HasComponent(components.Physics) {
		components.Physics.Get(e).SpeedX = 0
	}
}

// endAttack runs whenever an actor leaves Attack; the enemy attack cooldown
// counts from here.
func endAttack(e *donburi.Entry, now time.Duration) {
	components.State.Get(e).Attacking = false

	if e.HasComponent(components.Enemy) {
		enemy := components.Enemy.Get(e)
		enemy.LastAttackEnd = now
		enemy.CooldownArmed = true
	}
	if e.HasComponent(components.MeleeAttack) {
		removeHitbox(components.MeleeAttack.Get(e))
	}
}

func enterDeath(e *donburi.Entry) {
	state := components.State.Get(e)
	state.Attacking = false
	state.Flinching = false

	components.Health.Get(e).Current = 0

	if e.HasComponent(components.Physics) {
		components.Physics.Get(e).SpeedX = 0
	}
	if e.HasComponent(components.MeleeAttack) {
		removeHitbox(components.MeleeAttack.Get(e))
	}

	if !e.HasComponent(components.Death) {
		donburi.Add(e, components.Death, &components.DeathData{Alpha: 1})
	}
}
