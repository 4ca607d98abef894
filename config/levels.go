package config

import (
	"fmt"

	"github.com/yohamta/donburi/features/math"
)

// Rect is an axis-aligned rectangle in world space.
type Rect struct {
	X, Y, W, H float64
}

// EnemySpawn is an enemy placement resolved once at level load.
type EnemySpawn struct {
	Species string
	X, Y    float64
	Health  int
	Damage  int
	Speed   float64
	Scale   float64
}

// LevelDef is the static layout of one level.
type LevelDef struct {
	Number      int
	WorldWidth  float64
	GroundY     float64
	PlayerSpawn math.Vec2
	Platforms   []Rect
	Enemies     []EnemySpawn
}

// GroundHeight is the thickness of the ground strip below GroundY.
const GroundHeight = 80

// Levels holds the compiled-in layouts, in play order.
var Levels []LevelDef

// LevelCount returns the number of playable levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the layout for level n (1-based).
func GetLevel(n int) (LevelDef, error) {
	if n < 1 || n > len(Levels) {
		return LevelDef{}, fmt.Errorf("level %d out of range [1, %d]", n, len(Levels))
	}
	return Levels[n-1], nil
}

func orc(x float64, health, damage int, speed, scale float64) EnemySpawn {
	return EnemySpawn{
		Species: SpeciesOrc,
		X:       x,
		Y:       groundY() - 48*scale,
		Health:  health,
		Damage:  damage,
		Speed:   speed,
		Scale:   scale,
	}
}

func groundY() float64 {
	return float64(C.Height - GroundHeight)
}

func init() {
	spawn := math.Vec2{X: 64, Y: groundY() - Player.CollisionHeight - 100}

	Levels = []LevelDef{
		{
			Number:      1,
			WorldWidth:  2048,
			GroundY:     groundY(),
			PlayerSpawn: spawn,
			Platforms: []Rect{
				{X: 200, Y: 600, W: 200, H: 20},
				{X: 500, Y: 450, W: 200, H: 20},
				{X: 800, Y: 300, W: 150, H: 20},
				{X: 1200, Y: 550, W: 220, H: 20},
			},
			Enemies: []EnemySpawn{
				orc(900, 60, 10, 2, 1),
				orc(1600, 80, 12, 2, 1.2),
			},
		},
		{
			Number:      2,
			WorldWidth:  2400,
			GroundY:     groundY(),
			PlayerSpawn: spawn,
			Platforms: []Rect{
				{X: 100, Y: 500, W: 200, H: 20},
				{X: 400, Y: 400, W: 200, H: 20},
				{X: 900, Y: 300, W: 250, H: 20},
				{X: 1500, Y: 500, W: 180, H: 20},
				{X: 1900, Y: 350, W: 150, H: 20},
			},
			Enemies: []EnemySpawn{
				orc(700, 70, 12, 2.2, 1),
				orc(1300, 70, 12, 2.2, 1),
				orc(2000, 100, 15, 2, 1.3),
			},
		},
		{
			Number:      3,
			WorldWidth:  2200,
			GroundY:     groundY(),
			PlayerSpawn: spawn,
			Platforms: []Rect{
				{X: 150, Y: 550, W: 200, H: 20},
				{X: 600, Y: 450, W: 220, H: 20},
				{X: 1000, Y: 350, W: 200, H: 20},
				{X: 1700, Y: 600, W: 150, H: 20},
			},
			Enemies: []EnemySpawn{
				orc(800, 80, 14, 2.4, 1.1),
				orc(1200, 80, 14, 2.4, 1.1),
				orc(1750, 90, 15, 2.6, 1.2),
				orc(1950, 140, 20, 1.8, 1.5),
			},
		},
	}
}
