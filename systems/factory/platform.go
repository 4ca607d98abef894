package factory

import (
	"github.com/automoto/dungeon-platformer/archetypes"
	"github.com/automoto/dungeon-platformer/components"
	"github.com/automoto/dungeon-platformer/config"
	"github.com/automoto/dungeon-platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreatePlatform(w donburi.World, space *resolv.Space, r config.Rect) *donburi.Entry {
	platform := archetypes.Platform.Spawn(w)

	object := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
	object.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: object})
	space.Add(object)

	return platform
}
