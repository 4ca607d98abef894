package factory

import (
	"math"
	"time"

	"github.com/automoto/dungeon-platformer/archetypes"
	"github.com/automoto/dungeon-platformer/components"
	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/yohamta/donburi"
)

// CreateLevel spawns the level singleton, its resolv space, platforms,
// enemies and a fresh player.
func CreateLevel(w donburi.World, def cfg.LevelDef, now time.Duration) *donburi.Entry {
	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{Def: def})

	height := int(math.Ceil(def.GroundY)) + cfg.GroundHeight
	spaceEntry := CreateSpace(w, int(math.Ceil(def.WorldWidth)), height, cfg.Physics.CellSize, cfg.Physics.CellSize)
	space := components.Space.Get(spaceEntry)

	for _, r := range def.Platforms {
		CreatePlatform(w, space, r)
	}
	for _, spawn := range def.Enemies {
		CreateEnemy(w, space, spawn, now)
	}
	CreatePlayer(w, space, def.PlayerSpawn.X, def.PlayerSpawn.Y, now)

	return level
}
