package render

import (
	"fmt"

	"github.com/automoto/dungeon-platformer/components"
	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/automoto/dungeon-platformer/fonts"
	"github.com/automoto/dungeon-platformer/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines bodies and the active swing hitbox and labels each actor
// with its state and frame. Enabled with --debug.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitbox || !systems.IsPlaying(e.World) {
		return
	}
	camX := cameraX(e.World)
	small := fonts.Small.Get()

	components.State.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		state := components.State.Get(entry)
		anim := components.Animation.Get(entry)

		vector.StrokeRect(screen, float32(o.X-camX), float32(o.Y), float32(o.W), float32(o.H), 1, cfg.Green, false)
		label := fmt.Sprintf("%s %d/%d", state.CurrentState, anim.Frame(), anim.FrameCount())
		text.Draw(screen, label, small, int(o.X-camX), int(o.Y)-12, cfg.White)

		if entry.HasComponent(components.MeleeAttack) {
			if hb := components.MeleeAttack.Get(entry).Hitbox; hb != nil {
				vector.StrokeRect(screen, float32(hb.X-camX), float32(hb.Y), float32(hb.W), float32(hb.H), 1, cfg.Red, false)
			}
		}
	})
}
