package components

import (
	"github.com/automoto/dungeon-platformer/config"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Def config.LevelDef
}

var Level = donburi.NewComponentType[LevelData]()
