package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type PlayerData struct {
	LastAttackStart time.Duration
	HasAttacked     bool
}

var Player = donburi.NewComponentType[PlayerData]()
