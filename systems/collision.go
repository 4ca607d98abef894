package systems

import (
	"github.com/automoto/dungeon-platformer/components"
	"github.com/automoto/dungeon-platformer/tags"
	"github.com/yohamta/donburi"
)

// UpdateCollisions integrates every body's position and resolves it against
// the platforms, the ground plane and the world's horizontal bounds.
func UpdateCollisions(w donburi.World) {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	def := components.Level.Get(levelEntry).Def

	components.Physics.Each(w, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		prevBottom := obj.Y + obj.H
		obj.X += physics.SpeedX
		obj.Y += physics.SpeedY
		physics.OnGround = false

		resolvePlatformCollisions(obj, physics, prevBottom)
		resolveGroundCollision(obj, physics, def.GroundY)
		clampToWorld(obj, def.WorldWidth)

		obj.Update()
	})
}

// resolvePlatformCollisions compares the body's horizontal center with each
// overlapping platform's span. Inside the span the body lands on top when it
// came from above and is pushed below otherwise; outside the span it is
// pushed sideways away from the platform's center.
func resolvePlatformCollisions(obj *components.ObjectData, physics *components.PhysicsData, prevBottom float64) {
	if obj.Space == nil {
		return
	}
	check := obj.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return
	}

	for _, p := range check.Objects {
		if !overlaps(obj.Object, p) {
			continue
		}
		centerX := obj.CenterX()
		if centerX >= p.X && centerX <= p.X+p.W {
			if prevBottom <= p.Y && physics.SpeedY >= 0 {
				obj.Y = p.Y - obj.H
				physics.SpeedY = 0
				physics.OnGround = true
			} else {
				obj.Y = p.Y + p.H
				if physics.SpeedY < 0 {
					physics.SpeedY = 0
				}
			}
			continue
		}
		if centerX >= p.X+p.W/2 {
			obj.X = p.X + p.W
		} else {
			obj.X = p.X - obj.W
		}
	}
}

func resolveGroundCollision(obj *components.ObjectData, physics *components.PhysicsData, groundY float64) {
	if obj.Y+obj.H < groundY {
		return
	}
	obj.Y = groundY - obj.H
	if physics.SpeedY > 0 {
		physics.SpeedY = 0
	}
	physics.OnGround = true
}

func clampToWorld(obj *components.ObjectData, worldWidth float64) {
	if obj.X < 0 {
		obj.X = 0
	}
	if maxX := worldWidth - obj.W; obj.X > maxX {
		obj.X = maxX
	}
}
