package systems

import (
	"github.com/automoto/dungeon-platformer/components"
	"github.com/automoto/dungeon-platformer/config"
	"github.com/automoto/dungeon-platformer/tags"
	"github.com/yohamta/donburi"
)

// UpdateCamera centers the camera on the player horizontally without ever
// showing anything past the world's edges.
func UpdateCamera(w donburi.World) {
	camera := getOrCreateCamera(w)

	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return // no player (could be dead), skip camera update
	}
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	playerObject := components.Object.Get(playerEntry)

	camera.Position.X = CameraOffset(playerObject.CenterX(), levelData.Def.WorldWidth, float64(config.C.Width))
	camera.Position.Y = 0
}

// CameraOffset clamps centerX - screenWidth/2 to [0, worldWidth-screenWidth].
// A world narrower than the screen never scrolls.
func CameraOffset(centerX, worldWidth, screenWidth float64) float64 {
	maxX := worldWidth - screenWidth
	if maxX < 0 {
		maxX = 0
	}
	offset := centerX - screenWidth/2
	if offset < 0 {
		return 0
	}
	if offset > maxX {
		return maxX
	}
	return offset
}

func getOrCreateCamera(w donburi.World) *components.CameraData {
	entry, ok := components.Camera.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Camera))
	}
	return components.Camera.Get(entry)
}
