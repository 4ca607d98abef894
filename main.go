package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/automoto/dungeon-platformer/config"
	"github.com/automoto/dungeon-platformer/fonts"
	"github.com/automoto/dungeon-platformer/scenes"
	"github.com/automoto/dungeon-platformer/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

const appName = "dungeon-platformer"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Quit() bool
}

type Game struct {
	scene Scene
}

func NewGame(watcher *config.TuningWatcher) *Game {
	fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.TitleFontSize, config.UI.HUDFontSize-4)
	return &Game{
		scene: scenes.NewPlatformerScene(watcher),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.Quit() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

var (
	tuningPath string
	watchFlag  bool
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "A side-scrolling action platformer",
	Long: `Fight through the dungeon: clear every enemy in a level and reach its
right edge to unlock the next one.

Controls: arrows/A-D move, Space/W jump, F/J attack, 1-9 switch level,
Enter confirm, Backspace back, Esc quit.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&tuningPath, "config", "c", "", "tuning file (default: ~/.dungeon-platformer/tuning.yaml or ./tuning.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&watchFlag, "watch", "w", false, "reload the tuning file when it changes")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().IntVarP(&config.Debug.StartLevel, "level", "l", 0, "skip the menu and start this level")
	rootCmd.Flags().BoolVar(&config.Debug.ShowHitbox, "debug", false, "draw bodies, hitboxes and actor states")
	rootCmd.Flags().BoolVar(&config.Debug.DisableSave, "no-save", false, "do not load or save level progress")
}

func run(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	log.SetLevel(level)
	log.SetReportTimestamp(true)

	applied, err := config.LoadTuning(tuningPath)
	if err != nil {
		if tuningPath != "" {
			return err
		}
		log.Warn("ignoring tuning file", "error", err)
	}
	if applied != "" {
		log.Info("tuning loaded", "path", applied)
	}

	var watcher *config.TuningWatcher
	if watchFlag {
		if applied == "" {
			log.Warn("--watch needs a tuning file, nothing to watch")
		} else if watcher, err = config.NewTuningWatcher(applied); err != nil {
			log.Warn("could not watch tuning file", "path", applied, "error", err)
		} else {
			defer watcher.Close()
		}
	}

	if !config.Debug.DisableSave {
		if err := systems.InitPersistence(appName); err != nil {
			log.Warn("could not initialize persistence", "error", err)
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Dungeon Platformer")
	ebiten.SetTPS(config.Simulation.TPS)

	if err := ebiten.RunGame(NewGame(watcher)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
