package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName string // key into config.Enemy.Types
	Damage   int
	Speed    float64
	Scale    float64

	// Attack cooldown reference, set when an attack ends
	LastAttackEnd time.Duration
	CooldownArmed bool

	// SwingResolved is set once the current attack reached its midpoint
	// frame, whether or not it connected.
	SwingResolved bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
