package systems

import (
	"testing"

	"github.com/automoto/dungeon-platformer/components"
	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/stretchr/testify/assert"
)

func TestCameraOffset(t *testing.T) {
	tests := []struct {
		name                string
		centerX, worldWidth float64
		want                float64
	}{
		{"left edge", 100, 2048, 0},
		{"middle", 1000, 2048, 488},
		{"right edge", 2000, 2048, 1024},
		{"past right edge", 5000, 2048, 1024},
		{"negative", -300, 2048, 0},
		{"narrow world", 500, 800, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CameraOffset(tt.centerX, tt.worldWidth, 1024))
		})
	}
}

func TestUpdateCameraFollowsPlayer(t *testing.T) {
	w := newTestWorld(t, flatLevel())
	player := mustPlayer(t, w)
	placeBody(player, 1000, 552)

	UpdateCamera(w)

	camera := getOrCreateCamera(w)
	obj := components.Object.Get(player)
	assert.Equal(t, CameraOffset(obj.CenterX(), 2000, float64(cfg.C.Width)), camera.Position.X)
	assert.Equal(t, 0.0, camera.Position.Y)
}
