package systems

import (
	"testing"

	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestGetActionEdges(t *testing.T) {
	w := donburi.NewWorld()
	input := getOrCreateInput(w)

	press(w, cfg.ActionJump)
	jump := GetAction(input, cfg.ActionJump)
	assert.True(t, jump.Pressed)
	assert.True(t, jump.JustPressed)
	assert.False(t, jump.JustReleased)

	press(w, cfg.ActionJump)
	jump = GetAction(input, cfg.ActionJump)
	assert.True(t, jump.Pressed)
	assert.False(t, jump.JustPressed)

	press(w)
	jump = GetAction(input, cfg.ActionJump)
	assert.False(t, jump.Pressed)
	assert.True(t, jump.JustReleased)
}

func TestJustPressedLevel(t *testing.T) {
	w := donburi.NewWorld()
	input := getOrCreateInput(w)

	press(w)
	assert.Equal(t, 0, justPressedLevel(input))

	press(w, cfg.SelectLevelAction(3))
	assert.Equal(t, 3, justPressedLevel(input))

	press(w, cfg.SelectLevelAction(3))
	assert.Equal(t, 0, justPressedLevel(input))
}
