package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/dungeon-platformer/components"
	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

const progressKey = "progress"

// SavedProgress represents the level progress stored on disk
type SavedProgress struct {
	Level    int               `json:"level"`
	Statuses []cfg.LevelStatus `json:"statuses"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for progress storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open save data: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadProgress loads progress from disk. It returns nil when persistence is
// disabled or nothing has been saved yet.
func LoadProgress() (*SavedProgress, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(progressKey)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if data == nil {
		// No saved progress yet, use defaults
		return nil, nil
	}

	var progress SavedProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		return nil, fmt.Errorf("parse progress: %w", err)
	}
	return &progress, nil
}

// SaveProgress saves the run's level statuses. Failures are logged and never
// interrupt play.
func SaveProgress(run *components.RunData) {
	if gdataManager == nil {
		return
	}

	data, err := json.Marshal(SavedProgress{Level: run.Level, Statuses: run.Statuses})
	if err != nil {
		log.Warn("could not serialize progress", "error", err)
		return
	}
	if err := gdataManager.SaveItem(progressKey, data); err != nil {
		log.Warn("could not save progress", "error", err)
	}
}

// ApplyProgress promotes the run's statuses to the saved ones. Saved data can
// only move statuses forward.
func ApplyProgress(w donburi.World, saved *SavedProgress) {
	if saved == nil {
		return
	}
	run := GetOrCreateRun(w)
	for i, status := range saved.Statuses {
		run.Promote(i+1, status)
	}
	if run.Selectable(saved.Level) {
		run.Level = saved.Level
	}
}
