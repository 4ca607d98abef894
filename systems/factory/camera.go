package factory

import (
	"github.com/automoto/dungeon-platformer/archetypes"
	"github.com/automoto/dungeon-platformer/components"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{})
	return camera
}
