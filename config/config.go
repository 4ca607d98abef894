package config

import (
	"image/color"
	"time"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed     float64
	JumpSpeed float64

	// Combat
	Health         int
	AttackDamage   int
	AttackCooldown time.Duration // since the last attack start
	DamageCooldown time.Duration // invulnerability window after taking damage

	// Attack hitbox, measured from the body's horizontal center
	AttackReach     float64
	AttackTolerance float64 // half-height of the hitbox around the body center

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64

	// Species frame layout key in CharacterAnimations
	Species string
}

// EnemyTypeConfig contains configuration for specific enemy types.
// Per-spawn values in a LevelDef override Health, Damage, Speed and Scale.
type EnemyTypeConfig struct {
	Name           string
	Health         int
	Damage         int
	Speed          float64
	AttackRange    float64
	VisionRange    float64
	AttackCooldown time.Duration // since the last attack end
	DamageCooldown time.Duration

	// Dimensions at scale 1
	CollisionWidth  float64
	CollisionHeight float64

	// Visual
	TintColor color.RGBA
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64
	MaxFallSpeed float64

	// Resolv space cell size
	CellSize int
}

// RunConfig contains level progression configuration
type RunConfig struct {
	ExitMargin   float64       // distance from the right boundary that counts as the exit
	FadeDuration time.Duration // death fade-out after the final pose
}

// SimulationConfig contains tick timing
type SimulationConfig struct {
	TPS  int
	Step time.Duration
}

// UIConfig contains HUD and overlay configuration values
type UIConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarMargin float64

	EnemyBarWidth  float64
	EnemyBarHeight float64

	HealthBarBgColor color.RGBA
	HealthBarFgColor color.RGBA
	ChargeBarColor   color.RGBA
	PlayerColor      color.RGBA
	PlatformColor    color.RGBA
	GroundColor      color.RGBA
	BackgroundColor  color.RGBA
	OverlayColor     color.RGBA

	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TextColorLocked   color.RGBA

	TitleY         float64
	MenuStartY     float64
	MenuItemHeight float64

	HUDFontSize   float64
	TitleFontSize float64
}

// MenuConfig contains the option labels of each overlay
type MenuConfig struct {
	Title                string
	StartHint            string
	LevelCompleteTitle   string
	LevelCompleteOptions []string
	LevelSelectTitle     string
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Physics PhysicsConfig
var Run RunConfig
var Simulation SimulationConfig
var UI UIConfig
var Menu MenuConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	StartLevel  int  // Skip menu and go directly to this level when > 0
	ShowHitbox  bool // Draw attack hitboxes and body outlines
	DisableSave bool
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Gray         = color.RGBA{R: 110, G: 110, B: 110, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

// Direction is the horizontal facing of an actor.
type Direction float64

const (
	DirectionLeft  Direction = -1.0
	DirectionRight Direction = 1.0
)

// Opposes reports whether two facings point at each other's side.
func (d Direction) Opposes(other Direction) bool {
	return d != other
}

// Species keys shared by CharacterAnimations and the enemy tables.
const (
	SpeciesSoldier = "soldier"
	SpeciesOrc     = "orc"
)

func init() {
	C = &Config{
		Width:  1024,
		Height: 768,
	}

	Simulation = SimulationConfig{
		TPS:  60,
		Step: time.Second / 60,
	}

	Player = PlayerConfig{
		Speed:     6,
		JumpSpeed: 16,

		Health:         100,
		AttackDamage:   20,
		AttackCooldown: 1300 * time.Millisecond,
		DamageCooldown: 800 * time.Millisecond,

		AttackReach:     75,
		AttackTolerance: 25,

		CollisionWidth:  28,
		CollisionHeight: 48,

		Species: SpeciesSoldier,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			SpeciesOrc: {
				Name:           SpeciesOrc,
				Health:         60,
				Damage:         10,
				Speed:          2,
				AttackRange:    70,
				VisionRange:    280,
				AttackCooldown: 850 * time.Millisecond,
				DamageCooldown: 500 * time.Millisecond,

				CollisionWidth:  32,
				CollisionHeight: 48,

				TintColor: color.RGBA{R: 90, G: 170, B: 70, A: 255},
			},
		},
	}

	Physics = PhysicsConfig{
		Gravity:      0.8,
		MaxFallSpeed: 16,
		CellSize:     32,
	}

	Run = RunConfig{
		ExitMargin:   50,
		FadeDuration: 600 * time.Millisecond,
	}

	UI = UIConfig{
		HealthBarWidth:  200,
		HealthBarHeight: 16,
		HealthBarMargin: 20,

		EnemyBarWidth:  40,
		EnemyBarHeight: 5,

		HealthBarBgColor: color.RGBA{R: 60, G: 0, B: 0, A: 255},
		HealthBarFgColor: color.RGBA{R: 200, G: 30, B: 30, A: 255},
		ChargeBarColor:   color.RGBA{R: 255, G: 200, B: 40, A: 255},
		PlayerColor:      color.RGBA{R: 70, G: 120, B: 230, A: 255},
		PlatformColor:    color.RGBA{R: 120, G: 85, B: 60, A: 255},
		GroundColor:      color.RGBA{R: 60, G: 110, B: 50, A: 255},
		BackgroundColor:  color.RGBA{R: 25, G: 25, B: 40, A: 255},
		OverlayColor:     BlackOverlay,

		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TextColorLocked:   Gray,

		TitleY:         200,
		MenuStartY:     320,
		MenuItemHeight: 48,

		HUDFontSize:   16,
		TitleFontSize: 40,
	}

	Menu = MenuConfig{
		Title:                "DUNGEON PLATFORMER",
		StartHint:            "Press Enter to start",
		LevelCompleteTitle:   "LEVEL COMPLETE",
		LevelCompleteOptions: []string{"Next Level", "Level Select", "Main Menu"},
		LevelSelectTitle:     "SELECT LEVEL",
	}
}
