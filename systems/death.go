package systems

import (
	"github.com/automoto/dungeon-platformer/components"
	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/charmbracelet/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// UpdateDeaths fades out actors whose death pose is complete and removes
// them when the fade ends. Removing the player asks the run controller to
// restart the level.
func UpdateDeaths(w donburi.World) {
	dt := float32(StepDuration(w).Seconds())

	var removed []*donburi.Entry
	components.Death.Each(w, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		if !death.PoseComplete || death.Removed {
			return
		}
		if death.Fade == nil {
			death.Fade = gween.New(1, 0, float32(cfg.Run.FadeDuration.Seconds()), ease.Linear)
		}
		alpha, finished := death.Fade.Update(dt)
		death.Alpha = alpha
		if finished {
			death.Removed = true
			removed = append(removed, e)
		}
	})

	for _, e := range removed {
		if e.HasComponent(components.Player) {
			log.Info("player removed, restarting level")
			GetOrCreateRun(w).RestartPending = true
		}
		removeObject(e)
		w.Remove(e.Entity())
	}
}
