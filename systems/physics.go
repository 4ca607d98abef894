package systems

import (
	"github.com/automoto/dungeon-platformer/components"
	"github.com/yohamta/donburi"
)

// UpdatePhysics applies gravity to every body up to its maximum fall speed.
func UpdatePhysics(w donburi.World) {
	components.Physics.Each(w, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)

		// Dead actors keep falling but never walk
		if e.HasComponent(components.Death) {
			physics.SpeedX = 0
		}

		physics.SpeedY += physics.Gravity
		if physics.SpeedY > physics.MaxFallSpeed {
			physics.SpeedY = physics.MaxFallSpeed
		}
	})
}
