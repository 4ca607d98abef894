package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the simulation clock. Every cooldown and frame timer is
// measured against Now, never against wall time.
type ClockData struct {
	Now  time.Duration
	Step time.Duration
	Tick uint64
}

var Clock = donburi.NewComponentType[ClockData]()
