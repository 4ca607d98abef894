package factory

import (
	"time"

	"github.com/automoto/dungeon-platformer/archetypes"
	"github.com/automoto/dungeon-platformer/components"
	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/automoto/dungeon-platformer/tags"
	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateEnemy(w donburi.World, space *resolv.Space, spawn cfg.EnemySpawn, now time.Duration) *donburi.Entry {
	// Use the requested enemy type, default to the orc if not found
	enemyType, exists := cfg.Enemy.Types[spawn.Species]
	if !exists {
		log.Warn("unknown enemy species, using default", "species", spawn.Species, "default", cfg.SpeciesOrc)
		spawn.Species = cfg.SpeciesOrc
		enemyType = cfg.Enemy.Types[spawn.Species]
	}

	// Spawn values of zero fall back to the species defaults
	if spawn.Scale <= 0 {
		spawn.Scale = 1
	}
	if spawn.Health <= 0 {
		spawn.Health = enemyType.Health
	}
	if spawn.Damage <= 0 {
		spawn.Damage = enemyType.Damage
	}
	if spawn.Speed <= 0 {
		spawn.Speed = enemyType.Speed
	}

	enemy := archetypes.Enemy.Spawn(w)

	obj := resolv.NewObject(spawn.X, spawn.Y, enemyType.CollisionWidth*spawn.Scale, enemyType.CollisionHeight*spawn.Scale)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	obj.AddTags("character", tags.ResolvEnemy)
	obj.Data = enemy
	space.Add(obj)

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName: spawn.Species,
		Damage:   spawn.Damage,
		Speed:    spawn.Speed,
		Scale:    spawn.Scale,
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
		EnteredAt:     now,
		Facing:        cfg.DirectionLeft, // Start facing left
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current:        spawn.Health,
		Max:            spawn.Health,
		DamageCooldown: enemyType.DamageCooldown,
	})

	animData := &components.AnimationData{Layout: cfg.CharacterAnimations[spawn.Species]}
	animData.SetAnimation(cfg.Idle, now)
	components.Animation.Set(enemy, animData)

	return enemy
}
