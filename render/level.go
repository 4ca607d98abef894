package render

import (
	"github.com/automoto/dungeon-platformer/components"
	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/automoto/dungeon-platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// cameraX returns the horizontal world-to-screen offset.
func cameraX(w donburi.World) float64 {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return 0 // No camera yet
	}
	return components.Camera.Get(cameraEntry).Position.X
}

// DrawLevel renders the background, the ground strip and the platforms.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	def := components.Level.Get(levelEntry).Def
	camX := cameraX(e.World)

	vector.FillRect(screen,
		float32(-camX), float32(def.GroundY),
		float32(def.WorldWidth), float32(cfg.GroundHeight),
		cfg.UI.GroundColor, false)

	width := float64(screen.Bounds().Dx())
	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		screenX := o.X - camX
		// Simple cull
		if screenX+o.W < 0 || screenX > width {
			return
		}
		vector.FillRect(screen, float32(screenX), float32(o.Y), float32(o.W), float32(o.H), cfg.UI.PlatformColor, false)
	})
}
