package systems

import (
	"math"
	"time"

	"github.com/automoto/dungeon-platformer/components"
	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/automoto/dungeon-platformer/tags"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// UpdateEnemies runs the attack policy of every enemy against the player:
// attack inside attack range once the cooldown has elapsed, walk toward the
// player inside vision range, idle otherwise.
func UpdateEnemies(w donburi.World) {
	now := Now(w)

	// Get player position for AI decisions
	playerEntry, ok := tags.Player.First(w)
	var target *components.ObjectData
	if ok && components.Health.Get(playerEntry).Alive() {
		target = components.Object.Get(playerEntry)
	}

	var enemies []*donburi.Entry
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		enemies = append(enemies, e)
	})
	for _, e := range enemies {
		updateEnemyAI(e, target, now)
	}
}

func updateEnemyAI(e *donburi.Entry, target *components.ObjectData, now time.Duration) {
	enemy := components.Enemy.Get(e)
	physics := components.Physics.Get(e)
	state := components.State.Get(e)
	obj := components.Object.Get(e)

	if state.CurrentState == cfg.Death {
		physics.SpeedX = 0
		return
	}

	// No AI if no player
	if target == nil {
		physics.SpeedX = 0
		if !state.Busy() {
			SetState(e, cfg.Idle, now)
		}
		return
	}

	from := math2.Vec2{X: obj.CenterX(), Y: obj.CenterY()}
	to := math2.Vec2{X: target.CenterX(), Y: target.CenterY()}
	dx := to.X - from.X
	if dx < 0 {
		state.Facing = cfg.DirectionLeft
	} else if dx > 0 {
		state.Facing = cfg.DirectionRight
	}

	if state.Busy() {
		physics.SpeedX = 0
		return
	}

	et := cfg.Enemy.Types[enemy.TypeName]
	distance := math.Hypot(dx, to.Y-from.Y)

	switch {
	case distance < et.AttackRange:
		physics.SpeedX = 0
		if !enemy.CooldownArmed || now-enemy.LastAttackEnd > et.AttackCooldown {
			SetState(e, cfg.Attack, now)
		} else {
			SetState(e, cfg.Idle, now)
		}
	case distance < et.VisionRange:
		SetState(e, cfg.Walk, now)
		physics.SpeedX = StepToward(from, to, enemy.Speed).X
	default:
		physics.SpeedX = 0
		SetState(e, cfg.Idle, now)
	}
}

// StepToward returns the displacement of length speed from one point toward
// another. Coincident points yield no movement.
func StepToward(from, to math2.Vec2, speed float64) math2.Vec2 {
	dx := to.X - from.X
	dy := to.Y - from.Y
	distance := math.Hypot(dx, dy)
	if distance == 0 {
		return math2.Vec2{}
	}
	return math2.Vec2{X: speed * dx / distance, Y: speed * dy / distance}
}
