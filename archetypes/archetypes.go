package archetypes

import (
	"github.com/automoto/dungeon-platformer/components"
	"github.com/automoto/dungeon-platformer/tags"
	"github.com/yohamta/donburi"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Animation,
		components.Physics,
		components.State,
		components.MeleeAttack,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Animation,
		components.Physics,
		components.State,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Run = newArchetype(
		components.Run,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
