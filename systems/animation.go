package systems

import (
	"github.com/automoto/dungeon-platformer/components"
	cfg "github.com/automoto/dungeon-platformer/config"
	"github.com/yohamta/donburi"
)

// UpdateAnimations advances every actor's frame cursor and applies the
// transitions that happen when a state's frames run out.
func UpdateAnimations(w donburi.World) {
	now := Now(w)

	var finished []*donburi.Entry
	for e := range components.Animation.Iter(w) {
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation == nil {
			continue
		}
		if anim.CurrentAnimation.Update(now) {
			finished = append(finished, e)
		}
	}

	for _, e := range finished {
		state := components.State.Get(e)
		switch state.CurrentState {
		case cfg.Attack, cfg.Hit:
			SetState(e, cfg.Idle, now)
		case cfg.Death:
			if e.HasComponent(components.Death) {
				components.Death.Get(e).PoseComplete = true
			}
		}
	}
}
