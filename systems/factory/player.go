package factory

import (
	"time"

	"github.com/automoto/dungeon-platformer/archetypes"
	"github.com/automoto/dungeon-platformer/components"
	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/automoto/dungeon-platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreatePlayer(w donburi.World, space *resolv.Space, x, y float64, now time.Duration) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	obj := resolv.NewObject(x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	space.Add(obj)

	components.Player.SetValue(player, components.PlayerData{})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
		EnteredAt:     now,
		Facing:        cfg.DirectionRight,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})
	components.Health.SetValue(player, components.HealthData{
		Current:        cfg.Player.Health,
		Max:            cfg.Player.Health,
		DamageCooldown: cfg.Player.DamageCooldown,
	})
	components.MeleeAttack.SetValue(player, components.MeleeAttackData{
		HitEntities: make(map[donburi.Entity]bool),
	})

	animData := &components.AnimationData{Layout: cfg.CharacterAnimations[cfg.Player.Species]}
	animData.SetAnimation(cfg.Idle, now)
	components.Animation.Set(player, animData)

	return player
}
