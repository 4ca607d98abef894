package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData holds the world-to-screen offset. Only X scrolls.
type CameraData struct {
	Position math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
