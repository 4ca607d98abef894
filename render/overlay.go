package render

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/automoto/dungeon-platformer/fonts"
	"github.com/automoto/dungeon-platformer/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawOverlay renders the screen for the current non-playing phase.
func DrawOverlay(e *ecs.ECS, screen *ebiten.Image) {
	run := systems.GetOrCreateRun(e.World)
	width := float64(screen.Bounds().Dx())

	switch run.Phase {
	case cfg.PhaseMenu:
		drawTitle(screen, cfg.Menu.Title, width)
		drawCentered(screen, cfg.Menu.StartHint, fonts.Regular.Get(), width, cfg.UI.MenuStartY, cfg.White)
		drawCentered(screen, "Esc to quit", fonts.Small.Get(), width, cfg.UI.MenuStartY+cfg.UI.MenuItemHeight, cfg.Gray)

	case cfg.PhaseLevelComplete:
		dim(screen)
		drawTitle(screen, cfg.Menu.LevelCompleteTitle, width)
		for i, option := range cfg.Menu.LevelCompleteOptions {
			drawOption(screen, option, width, i, i == run.MenuIndex, false)
		}

	case cfg.PhaseLevelSelect:
		drawTitle(screen, cfg.Menu.LevelSelectTitle, width)
		for i, status := range run.Statuses {
			n := i + 1
			label := fmt.Sprintf("Level %d  (%s)", n, status)
			drawOption(screen, label, width, i, i == run.MenuIndex, !run.Selectable(n))
		}
	}
}

func dim(screen *ebiten.Image) {
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), cfg.UI.OverlayColor, false)
}

func drawTitle(screen *ebiten.Image, title string, width float64) {
	drawCentered(screen, title, fonts.Title.Get(), width, cfg.UI.TitleY, cfg.White)
}

func drawOption(screen *ebiten.Image, label string, width float64, index int, selected, locked bool) {
	clr := cfg.UI.TextColorNormal
	switch {
	case locked:
		clr = cfg.UI.TextColorLocked
	case selected:
		clr = cfg.UI.TextColorSelected
	}
	if selected {
		label = "> " + label + " <"
	}
	y := cfg.UI.MenuStartY + float64(index)*cfg.UI.MenuItemHeight
	drawCentered(screen, label, fonts.Regular.Get(), width, y, clr)
}

// drawCentered draws s horizontally centered on the screen at baseline y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, width, y float64, clr color.Color) {
	bounds := text.BoundString(face, s)
	x := int((width - float64(bounds.Dx())) / 2)
	text.Draw(screen, s, face, x, int(y), clr)
}
