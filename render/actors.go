package render

import (
	"image/color"

	"github.com/automoto/dungeon-platformer/components"
	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/automoto/dungeon-platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawActors renders every actor as a body rectangle with a facing marker.
// Attacks show a blade that grows with the current frame; dying actors fade.
func DrawActors(e *ecs.ECS, screen *ebiten.Image) {
	camX := cameraX(e.World)

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		et := cfg.Enemy.Types[components.Enemy.Get(entry).TypeName]
		drawActor(screen, entry, camX, et.TintColor)
	})
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		drawActor(screen, entry, camX, cfg.UI.PlayerColor)
	})
}

func drawActor(screen *ebiten.Image, entry *donburi.Entry, camX float64, base color.RGBA) {
	o := components.Object.Get(entry)
	state := components.State.Get(entry)
	anim := components.Animation.Get(entry)

	alpha := float32(1)
	if entry.HasComponent(components.Death) {
		alpha = components.Death.Get(entry).Alpha
	}

	body := fade(base, alpha)
	switch state.CurrentState {
	case cfg.Hit:
		body = fade(cfg.White, alpha)
	case cfg.Death:
		body = fade(cfg.Gray, alpha)
	}

	x := o.X - camX
	vector.FillRect(screen, float32(x), float32(o.Y), float32(o.W), float32(o.H), body, false)

	// Facing marker, mirrored by direction
	markerW := o.W / 4
	markerX := x + o.W - markerW
	if state.Facing == cfg.DirectionLeft {
		markerX = x
	}
	vector.FillRect(screen, float32(markerX), float32(o.Y+o.H/4), float32(markerW), float32(o.H/8), fade(cfg.Yellow, alpha), false)

	if state.CurrentState == cfg.Attack && anim.FrameCount() > 0 {
		reach := o.W * float64(anim.Frame()+1) / float64(anim.FrameCount())
		bladeX := x + o.W
		if state.Facing == cfg.DirectionLeft {
			bladeX = x - reach
		}
		vector.FillRect(screen, float32(bladeX), float32(o.Y+o.H/2-2), float32(reach), 4, fade(cfg.White, alpha), false)
	}
}

// DrawEnemyHealthBars renders a bar above each living enemy.
func DrawEnemyHealthBars(e *ecs.ECS, screen *ebiten.Image) {
	camX := cameraX(e.World)
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		hp := components.Health.Get(entry)
		if !hp.Alive() {
			return
		}
		o := components.Object.Get(entry)
		barW := cfg.UI.EnemyBarWidth
		drawX := o.CenterX() - barW/2 - camX
		drawY := o.Y - cfg.UI.EnemyBarHeight - 4

		vector.FillRect(screen, float32(drawX), float32(drawY), float32(barW), float32(cfg.UI.EnemyBarHeight), cfg.Red, false)
		vector.FillRect(screen, float32(drawX), float32(drawY), float32(barW*hp.Ratio()), float32(cfg.UI.EnemyBarHeight), cfg.Green, false)
	})
}

func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	// premultiplied
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
