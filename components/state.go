package components

import (
	"time"

	"github.com/automoto/dungeon-platformer/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	EnteredAt     time.Duration
	Facing        config.Direction

	// Attacking and Flinching are never both set.
	Attacking bool
	Flinching bool
}

// Busy reports whether the actor ignores movement and attack decisions.
func (s *StateData) Busy() bool {
	return s.Attacking || s.Flinching || s.CurrentState == config.Death
}

var State = donburi.NewComponentType[StateData]()
