package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DeathData marks an entity that has started its death sequence. Once the
// death pose is complete Fade runs and the entity is removed when it ends.
type DeathData struct {
	PoseComplete bool
	Fade         *gween.Tween
	Alpha        float32
	Removed      bool
}

var Death = donburi.NewComponentType[DeathData]()
