package systems

import (
	"math"
	"time"

	"github.com/automoto/dungeon-platformer/components"
	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/automoto/dungeon-platformer/tags"
	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// TakeDamage applies amount to an actor's health. Dead actors, non-positive
// amounts and hits inside the invulnerability window are ignored. A hit that
// empties health goes straight to Death, anything else to Hit.
func TakeDamage(e *donburi.Entry, amount int, now time.Duration) bool {
	hp := components.Health.Get(e)
	state := components.State.Get(e)
	if !hp.Alive() || state.CurrentState == cfg.Death || amount <= 0 {
		return false
	}
	if hp.Invulnerable(now) {
		return false
	}

	hp.Current -= amount
	if hp.Current < 0 {
		hp.Current = 0
	}
	hp.LastDamageAt = now
	hp.Damaged = true

	if hp.Current == 0 {
		startDeathSequence(e, now)
	} else {
		SetState(e, cfg.Hit, now)
	}
	return true
}

func startDeathSequence(e *donburi.Entry, now time.Duration) {
	SetState(e, cfg.Death, now)
	if e.HasComponent(components.Player) {
		log.Info("player died")
	} else if e.HasComponent(components.Enemy) {
		log.Debug("enemy died", "species", components.Enemy.Get(e).TypeName)
	}
}

// UpdateCombat resolves the player's swing against enemy bodies and each
// enemy swing against the player.
func UpdateCombat(w donburi.World) {
	now := Now(w)
	player, ok := tags.Player.First(w)
	if !ok {
		return
	}
	updatePlayerAttack(player, now)
	updateEnemyAttacks(w, player, now)
}

func updatePlayerAttack(player *donburi.Entry, now time.Duration) {
	state := components.State.Get(player)
	melee := components.MeleeAttack.Get(player)
	if !state.Attacking || state.CurrentState != cfg.Attack {
		removeHitbox(melee)
		return
	}

	obj := components.Object.Get(player)
	if melee.Hitbox == nil {
		if obj.Space == nil {
			return
		}
		melee.Hitbox = resolv.NewObject(0, 0, cfg.Player.AttackReach, cfg.Player.AttackTolerance*2, tags.ResolvHitbox)
		melee.Hitbox.Data = player
		obj.Space.Add(melee.Hitbox)
	}
	placeHitbox(melee.Hitbox, obj, state.Facing)

	check := melee.Hitbox.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return
	}

	var targets []*donburi.Entry
	for _, o := range check.Objects {
		enemy, ok := entryOf(o)
		if !ok || !overlaps(melee.Hitbox, o) {
			continue
		}
		if melee.HitEntities[enemy.Entity()] {
			continue
		}
		enemyState := components.State.Get(enemy)
		if enemyState.CurrentState == cfg.Hit || !state.Facing.Opposes(enemyState.Facing) {
			continue
		}
		targets = append(targets, enemy)
	}

	for _, enemy := range targets {
		melee.HitEntities[enemy.Entity()] = true
		TakeDamage(enemy, cfg.Player.AttackDamage, now)
	}
}

// placeHitbox puts the swing hitbox in front of the body, vertically centered.
func placeHitbox(hitbox *resolv.Object, body *components.ObjectData, facing cfg.Direction) {
	hitbox.W = cfg.Player.AttackReach
	hitbox.H = cfg.Player.AttackTolerance * 2
	if facing == cfg.DirectionLeft {
		hitbox.X = body.CenterX() - hitbox.W
	} else {
		hitbox.X = body.CenterX()
	}
	hitbox.Y = body.CenterY() - hitbox.H/2
	hitbox.Update()
}

// updateEnemyAttacks lands each enemy swing once, on the first tick its
// cursor is at or past the middle frame, if the player is still in range.
func updateEnemyAttacks(w donburi.World, player *donburi.Entry, now time.Duration) {
	var strikes []int

	for e := range components.Enemy.Iter(w) {
		enemy := components.Enemy.Get(e)
		state := components.State.Get(e)
		if !state.Attacking || enemy.SwingResolved {
			continue
		}
		anim := components.Animation.Get(e)
		if anim.Frame() < anim.FrameCount()/2 {
			continue
		}
		enemy.SwingResolved = true

		et := cfg.Enemy.Types[enemy.TypeName]
		if centerDistance(e, player) < et.AttackRange {
			strikes = append(strikes, enemy.Damage)
		}
	}

	for _, damage := range strikes {
		TakeDamage(player, damage, now)
	}
}

// centerDistance is the Euclidean distance between two body centers.
func centerDistance(a, b *donburi.Entry) float64 {
	oa := components.Object.Get(a)
	ob := components.Object.Get(b)
	return math.Hypot(ob.CenterX()-oa.CenterX(), ob.CenterY()-oa.CenterY())
}
