package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// TuningFileName is the file looked up in the user and working directories.
const TuningFileName = "tuning.yaml"

// PhysicsTuning is the YAML view of PhysicsConfig.
type PhysicsTuning struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// PlayerTuning is the YAML view of PlayerConfig.
type PlayerTuning struct {
	Speed           float64       `yaml:"speed"`
	JumpSpeed       float64       `yaml:"jump_speed"`
	Health          int           `yaml:"health"`
	AttackDamage    int           `yaml:"attack_damage"`
	AttackCooldown  time.Duration `yaml:"attack_cooldown"`
	DamageCooldown  time.Duration `yaml:"damage_cooldown"`
	AttackReach     float64       `yaml:"attack_reach"`
	AttackTolerance float64       `yaml:"attack_tolerance"`
}

// EnemyTuning is the YAML view of EnemyTypeConfig.
type EnemyTuning struct {
	Health         int           `yaml:"health"`
	Damage         int           `yaml:"damage"`
	Speed          float64       `yaml:"speed"`
	AttackRange    float64       `yaml:"attack_range"`
	VisionRange    float64       `yaml:"vision_range"`
	AttackCooldown time.Duration `yaml:"attack_cooldown"`
	DamageCooldown time.Duration `yaml:"damage_cooldown"`
}

// RunTuning is the YAML view of RunConfig.
type RunTuning struct {
	ExitMargin   float64       `yaml:"exit_margin"`
	FadeDuration time.Duration `yaml:"fade_duration"`
}

// Tuning is the set of gameplay values a tuning file may override. Fields
// missing from the file keep their current value.
type Tuning struct {
	Physics PhysicsTuning          `yaml:"physics"`
	Player  PlayerTuning           `yaml:"player"`
	Enemies map[string]EnemyTuning `yaml:"-"`
	Run     RunTuning              `yaml:"run"`
}

// CurrentTuning captures the active global configuration.
func CurrentTuning() Tuning {
	t := Tuning{
		Physics: PhysicsTuning{
			Gravity:      Physics.Gravity,
			MaxFallSpeed: Physics.MaxFallSpeed,
		},
		Player: PlayerTuning{
			Speed:           Player.Speed,
			JumpSpeed:       Player.JumpSpeed,
			Health:          Player.Health,
			AttackDamage:    Player.AttackDamage,
			AttackCooldown:  Player.AttackCooldown,
			DamageCooldown:  Player.DamageCooldown,
			AttackReach:     Player.AttackReach,
			AttackTolerance: Player.AttackTolerance,
		},
		Enemies: make(map[string]EnemyTuning, len(Enemy.Types)),
		Run: RunTuning{
			ExitMargin:   Run.ExitMargin,
			FadeDuration: Run.FadeDuration,
		},
	}
	for name, et := range Enemy.Types {
		t.Enemies[name] = EnemyTuning{
			Health:         et.Health,
			Damage:         et.Damage,
			Speed:          et.Speed,
			AttackRange:    et.AttackRange,
			VisionRange:    et.VisionRange,
			AttackCooldown: et.AttackCooldown,
			DamageCooldown: et.DamageCooldown,
		}
	}
	return t
}

// ParseTuning overlays YAML data on the active configuration.
func ParseTuning(data []byte) (Tuning, error) {
	t := CurrentTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to parse tuning: %w", err)
	}

	// Decode each species onto its current values so partial entries keep
	// the fields they omit.
	var raw struct {
		Enemies map[string]yaml.Node `yaml:"enemies"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return t, fmt.Errorf("failed to parse tuning enemies: %w", err)
	}
	for name, node := range raw.Enemies {
		et, ok := t.Enemies[name]
		if !ok {
			return t, fmt.Errorf("unknown enemy species %q", name)
		}
		if err := node.Decode(&et); err != nil {
			return t, fmt.Errorf("failed to parse enemy %q: %w", name, err)
		}
		t.Enemies[name] = et
	}
	return t, nil
}

// Apply writes t into the global configuration.
func (t Tuning) Apply() {
	Physics.Gravity = t.Physics.Gravity
	Physics.MaxFallSpeed = t.Physics.MaxFallSpeed

	Player.Speed = t.Player.Speed
	Player.JumpSpeed = t.Player.JumpSpeed
	Player.Health = t.Player.Health
	Player.AttackDamage = t.Player.AttackDamage
	Player.AttackCooldown = t.Player.AttackCooldown
	Player.DamageCooldown = t.Player.DamageCooldown
	Player.AttackReach = t.Player.AttackReach
	Player.AttackTolerance = t.Player.AttackTolerance

	for name, et := range t.Enemies {
		cur, ok := Enemy.Types[name]
		if !ok {
			continue
		}
		cur.Health = et.Health
		cur.Damage = et.Damage
		cur.Speed = et.Speed
		cur.AttackRange = et.AttackRange
		cur.VisionRange = et.VisionRange
		cur.AttackCooldown = et.AttackCooldown
		cur.DamageCooldown = et.DamageCooldown
		Enemy.Types[name] = cur
	}

	Run.ExitMargin = t.Run.ExitMargin
	Run.FadeDuration = t.Run.FadeDuration
}

// LoadTuning reads a tuning file and applies it.
// Search order: customPath -> ~/.dungeon-platformer/tuning.yaml -> ./tuning.yaml.
// It returns the path that was applied, or "" when only the compiled-in
// defaults are in effect.
func LoadTuning(customPath string) (string, error) {
	if customPath != "" {
		if err := applyTuningFile(customPath); err != nil {
			return "", err
		}
		return customPath, nil
	}

	for _, path := range []string{userTuningPath(), TuningFileName} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := applyTuningFile(path); err != nil {
			return "", err
		}
		return path, nil
	}
	return "", nil
}

func applyTuningFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tuning %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	t.Apply()
	return nil
}

// userTuningPath returns the per-user tuning file, or empty if home is unavailable.
func userTuningPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dungeon-platformer", TuningFileName)
}
