package factory

import (
	"github.com/automoto/dungeon-platformer/archetypes"
	"github.com/automoto/dungeon-platformer/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}
