// components/melee.go
package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type MeleeAttackData struct {
	// Hitbox lives in the level space for the duration of a swing.
	Hitbox *resolv.Object
	// HitEntities holds every enemy already damaged by the current swing.
	HitEntities map[donburi.Entity]bool
}

var MeleeAttack = donburi.NewComponentType[MeleeAttackData]()
