package scenes

import (
	"sync"

	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/automoto/dungeon-platformer/input"
	"github.com/automoto/dungeon-platformer/render"
	"github.com/automoto/dungeon-platformer/systems"
	"github.com/automoto/dungeon-platformer/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const layerDefault ecs.LayerID = 0

// PlatformerScene runs the whole game in one world; the run controller
// switches between menu, play and the overlays.
type PlatformerScene struct {
	ecs     *ecs.ECS
	watcher *cfg.TuningWatcher
	once    sync.Once
}

// NewPlatformerScene creates the scene. watcher may be nil.
func NewPlatformerScene(watcher *cfg.TuningWatcher) *PlatformerScene {
	return &PlatformerScene{watcher: watcher}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.reloadTuning()
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.UI.BackgroundColor)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Quit reports whether the player asked to leave the game.
func (ps *PlatformerScene) Quit() bool {
	if ps.ecs == nil {
		return false
	}
	return systems.GetOrCreateRun(ps.ecs.World).Quit
}

func (ps *PlatformerScene) configure() {
	world := donburi.NewWorld()
	ps.ecs = ecs.NewECS(world)

	factory.CreateClock(world, cfg.Simulation.Step)
	factory.CreateInput(world)
	factory.CreateCamera(world)
	factory.CreateRun(world, cfg.LevelCount())

	if saved, err := systems.LoadProgress(); err != nil {
		log.Warn("could not load progress", "error", err)
	} else {
		systems.ApplyProgress(world, saved)
	}

	// Input must be polled before the simulation pipeline
	ps.ecs.AddSystem(input.Update)
	for _, system := range systems.Pipeline {
		ps.ecs.AddSystem(adapt(system))
	}

	ps.ecs.AddRenderer(layerDefault, render.DrawLevel)
	ps.ecs.AddRenderer(layerDefault, render.DrawActors)
	ps.ecs.AddRenderer(layerDefault, render.DrawEnemyHealthBars)
	ps.ecs.AddRenderer(layerDefault, render.DrawDebug)
	ps.ecs.AddRenderer(layerDefault, render.DrawHUD)
	ps.ecs.AddRenderer(layerDefault, render.DrawOverlay)

	if cfg.Debug.StartLevel > 0 {
		run := systems.GetOrCreateRun(world)
		run.Promote(cfg.Debug.StartLevel, cfg.LevelUnlocked)
		if !systems.StartLevel(world, cfg.Debug.StartLevel) {
			log.Warn("could not skip to level", "level", cfg.Debug.StartLevel)
		}
	}
}

// reloadTuning applies a changed tuning file between frames.
func (ps *PlatformerScene) reloadTuning() {
	if ps.watcher == nil {
		return
	}
	select {
	case path := <-ps.watcher.Events:
		if err := ps.watcher.Reload(); err != nil {
			log.Warn("tuning reload failed", "path", path, "error", err)
			return
		}
		log.Info("tuning reloaded", "path", path)
	case err := <-ps.watcher.Errors:
		log.Warn("tuning watcher error", "error", err)
	default:
	}
}

func adapt(system systems.System) ecs.System {
	return func(e *ecs.ECS) {
		system(e.World)
	}
}
