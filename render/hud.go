package render

import (
	"fmt"

	"github.com/automoto/dungeon-platformer/components"
	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/automoto/dungeon-platformer/fonts"
	"github.com/automoto/dungeon-platformer/systems"
	"github.com/automoto/dungeon-platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the player's health bar, the attack charge bar and the
// level number in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	run := systems.GetOrCreateRun(e.World)
	if run.Phase != cfg.PhasePlaying {
		return
	}

	margin := float32(cfg.UI.HealthBarMargin)
	barW := float32(cfg.UI.HealthBarWidth)
	barH := float32(cfg.UI.HealthBarHeight)

	if playerEntry, ok := tags.Player.First(e.World); ok {
		hp := components.Health.Get(playerEntry)

		vector.FillRect(screen, margin, margin, barW, barH, cfg.UI.HealthBarBgColor, false)
		vector.FillRect(screen, margin, margin, barW*float32(hp.Ratio()), barH, cfg.UI.HealthBarFgColor, false)

		chargeY := margin + barH + 4
		vector.FillRect(screen, margin, chargeY, barW*float32(systems.AttackCharge(e.World)), barH/2, cfg.UI.ChargeBarColor, false)
	}

	label := fmt.Sprintf("Level %d", run.Level)
	text.Draw(screen, label, fonts.Regular.Get(), int(margin+barW+16), int(margin+barH), cfg.White)
}
