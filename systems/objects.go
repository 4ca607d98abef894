package systems

import (
	"github.com/automoto/dungeon-platformer/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// overlaps is the narrow phase for candidates returned by a resolv Check,
// which only guarantees that two objects share a cell.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// removeObject takes an entity's body out of its resolv space.
func removeObject(e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object != nil && obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
}

func removeHitbox(melee *components.MeleeAttackData) {
	if melee.Hitbox == nil {
		return
	}
	if melee.Hitbox.Space != nil {
		melee.Hitbox.Space.Remove(melee.Hitbox)
	}
	melee.Hitbox = nil
}

// entryOf returns the live entity stored on a resolv object.
func entryOf(obj *resolv.Object) (*donburi.Entry, bool) {
	e, ok := obj.Data.(*donburi.Entry)
	if !ok || e == nil || !e.Valid() {
		return nil, false
	}
	return e, true
}
