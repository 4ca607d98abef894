package systems

import (
	"fmt"

	"github.com/automoto/dungeon-platformer/components"
	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/automoto/dungeon-platformer/systems/factory"
	"github.com/automoto/dungeon-platformer/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// LoadLevel discards the current level entities and builds level n from its
// compiled-in layout, with a fresh player at the spawn point.
func LoadLevel(w donburi.World, n int) error {
	def, err := cfg.GetLevel(n)
	if err != nil {
		return fmt.Errorf("load level: %w", err)
	}
	return LoadLevelDef(w, def)
}

// LoadLevelDef is LoadLevel for a layout that is not in the level table.
func LoadLevelDef(w donburi.World, def cfg.LevelDef) error {
	if def.WorldWidth <= 0 {
		return fmt.Errorf("load level %d: world width %v", def.Number, def.WorldWidth)
	}
	UnloadLevel(w)
	factory.CreateLevel(w, def, Now(w))

	camera := getOrCreateCamera(w)
	camera.Position.X = 0
	camera.Position.Y = 0

	log.Info("level loaded", "level", def.Number, "enemies", len(def.Enemies), "platforms", len(def.Platforms))
	return nil
}

// UnloadLevel removes every entity that belongs to the current level.
func UnloadLevel(w donburi.World) {
	var entries []*donburi.Entry
	collect := func(e *donburi.Entry) {
		entries = append(entries, e)
	}
	tags.Player.Each(w, collect)
	tags.Enemy.Each(w, collect)
	tags.Platform.Each(w, collect)
	components.Level.Each(w, collect)
	components.Space.Each(w, collect)

	for _, e := range entries {
		if e.HasComponent(components.MeleeAttack) {
			removeHitbox(components.MeleeAttack.Get(e))
		}
		w.Remove(e.Entity())
	}
}

// LevelCleared reports whether the win condition holds: no enemy is alive and
// the living player's right edge is within the exit margin of the world's
// right boundary.
func LevelCleared(w donburi.World) bool {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return false
	}
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return false
	}
	if !components.Health.Get(playerEntry).Alive() || components.State.Get(playerEntry).CurrentState == cfg.Death {
		return false
	}

	alive := 0
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if components.Health.Get(e).Alive() {
			alive++
		}
	})
	if alive > 0 {
		return false
	}

	def := components.Level.Get(levelEntry).Def
	return components.Object.Get(playerEntry).Right() >= def.WorldWidth-cfg.Run.ExitMargin
}
