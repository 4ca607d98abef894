package systems

import (
	"testing"

	"github.com/automoto/dungeon-platformer/components"
	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func levelWithPlatform(p cfg.Rect) cfg.LevelDef {
	def := flatLevel()
	def.Platforms = []cfg.Rect{p}
	return def
}

func placeBody(e *donburi.Entry, x, y float64) *components.ObjectData {
	obj := components.Object.Get(e)
	obj.X = x
	obj.Y = y
	obj.Update()
	return obj
}

func settle(w donburi.World, e *donburi.Entry, maxTicks int) bool {
	physics := components.Physics.Get(e)
	for i := 0; i < maxTicks; i++ {
		UpdatePhysics(w)
		UpdateCollisions(w)
		if physics.OnGround {
			return true
		}
	}
	return false
}

func TestFallingBodyLandsOnGround(t *testing.T) {
	w := newTestWorld(t, flatLevel())
	player := mustPlayer(t, w)
	obj := placeBody(player, 100, 100)

	require.True(t, settle(w, player, 200))

	assert.Equal(t, float64(testGroundY), obj.Y+obj.H)
	assert.Equal(t, 0.0, components.Physics.Get(player).SpeedY)
}

func TestFallSpeedIsCapped(t *testing.T) {
	w := newTestWorld(t, flatLevel())
	player := mustPlayer(t, w)
	placeBody(player, 100, 0)

	for i := 0; i < 100; i++ {
		UpdatePhysics(w)
		require.LessOrEqual(t, components.Physics.Get(player).SpeedY, cfg.Physics.MaxFallSpeed)
		UpdateCollisions(w)
	}
}

func TestBodyLandsOnPlatformTop(t *testing.T) {
	w := newTestWorld(t, levelWithPlatform(cfg.Rect{X: 50, Y: 400, W: 200, H: 20}))
	player := mustPlayer(t, w)
	obj := placeBody(player, 100, 300)

	require.True(t, settle(w, player, 200))

	assert.Equal(t, 400.0, obj.Y+obj.H)
}

func TestBodyRisingIntoPlatformIsPushedBelow(t *testing.T) {
	w := newTestWorld(t, levelWithPlatform(cfg.Rect{X: 50, Y: 400, W: 200, H: 20}))
	player := mustPlayer(t, w)
	obj := placeBody(player, 100, 425)
	physics := components.Physics.Get(player)
	physics.SpeedY = -10

	UpdateCollisions(w)

	assert.Equal(t, 420.0, obj.Y)
	assert.Equal(t, 0.0, physics.SpeedY)
	assert.False(t, physics.OnGround)
}

func TestBodyBesidePlatformIsPushedSideways(t *testing.T) {
	w := newTestWorld(t, levelWithPlatform(cfg.Rect{X: 300, Y: 500, W: 100, H: 20}))
	player := mustPlayer(t, w)

	left := placeBody(player, 280, 490)
	UpdateCollisions(w)
	assert.Equal(t, 300.0-left.W, left.X)

	right := placeBody(player, 390, 490)
	UpdateCollisions(w)
	assert.Equal(t, 400.0, right.X)
}

func TestBodyClampedToWorld(t *testing.T) {
	w := newTestWorld(t, flatLevel())
	player := mustPlayer(t, w)

	obj := placeBody(player, -50, 552)
	UpdateCollisions(w)
	assert.Equal(t, 0.0, obj.X)

	placeBody(player, 5000, 552)
	UpdateCollisions(w)
	assert.Equal(t, 2000-obj.W, obj.X)
}

func TestJumpOnlyFromGround(t *testing.T) {
	w := newTestWorld(t, flatLevel())
	player := mustPlayer(t, w)
	physics := components.Physics.Get(player)

	placeBody(player, 100, 300)
	physics.OnGround = false
	press(w, cfg.ActionJump)
	UpdatePlayer(w)
	assert.Equal(t, 0.0, physics.SpeedY)

	require.True(t, settle(w, player, 200))
	press(w, cfg.ActionJump)
	UpdatePlayer(w)
	assert.Equal(t, -cfg.Player.JumpSpeed, physics.SpeedY)
	assert.False(t, physics.OnGround)
}

func TestPlayerMovesWithInput(t *testing.T) {
	w := newTestWorld(t, flatLevel())
	player := mustPlayer(t, w)
	obj := components.Object.Get(player)
	startX := obj.X

	press(w, cfg.ActionMoveRight)
	UpdatePlayer(w)
	UpdateCollisions(w)

	assert.Equal(t, startX+cfg.Player.Speed, obj.X)
	assert.Equal(t, cfg.Walk, components.State.Get(player).CurrentState)
	assert.Equal(t, cfg.DirectionRight, components.State.Get(player).Facing)

	press(w, cfg.ActionMoveLeft)
	UpdatePlayer(w)
	assert.Equal(t, cfg.DirectionLeft, components.State.Get(player).Facing)

	press(w)
	UpdatePlayer(w)
	assert.Equal(t, cfg.Idle, components.State.Get(player).CurrentState)
	assert.Equal(t, 0.0, components.Physics.Get(player).SpeedX)
}
