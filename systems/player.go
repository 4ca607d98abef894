package systems

import (
	"time"

	"github.com/automoto/dungeon-platformer/components"
	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/automoto/dungeon-platformer/tags"
	"github.com/yohamta/donburi"
)

// UpdatePlayer turns the player's actions into facing, horizontal speed,
// jumps and attacks. Nothing is read while attacking, flinching or dead.
func UpdatePlayer(w donburi.World) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	input := getOrCreateInput(w)
	now := Now(w)

	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	state := components.State.Get(playerEntry)

	if state.Busy() {
		physics.SpeedX = 0
		return
	}

	left := GetAction(input, cfg.ActionMoveLeft).Pressed
	right := GetAction(input, cfg.ActionMoveRight).Pressed
	physics.SpeedX = 0
	switch {
	case left && !right:
		physics.SpeedX = -cfg.Player.Speed
		state.Facing = cfg.DirectionLeft
	case right && !left:
		physics.SpeedX = cfg.Player.Speed
		state.Facing = cfg.DirectionRight
	}

	// Jump only from the ground
	if GetAction(input, cfg.ActionJump).Pressed && physics.OnGround {
		physics.SpeedY = -cfg.Player.JumpSpeed
		physics.OnGround = false
	}

	if GetAction(input, cfg.ActionAttack).JustPressed && attackReady(player, now) {
		SetState(playerEntry, cfg.Attack, now)
		return
	}

	if physics.SpeedX != 0 {
		SetState(playerEntry, cfg.Walk, now)
	} else {
		SetState(playerEntry, cfg.Idle, now)
	}
}

func attackReady(player *components.PlayerData, now time.Duration) bool {
	return !player.HasAttacked || now-player.LastAttackStart > cfg.Player.AttackCooldown
}

// AttackCharge returns how far the attack cooldown has recovered, in [0, 1].
func AttackCharge(w donburi.World) float64 {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return 0
	}
	player := components.Player.Get(playerEntry)
	if !player.HasAttacked || cfg.Player.AttackCooldown <= 0 {
		return 1
	}
	charge := float64(Now(w)-player.LastAttackStart) / float64(cfg.Player.AttackCooldown)
	if charge > 1 {
		return 1
	}
	return charge
}
