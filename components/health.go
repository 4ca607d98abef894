package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type HealthData struct {
	Current int
	Max     int

	// Invulnerability window after taking damage
	DamageCooldown time.Duration
	LastDamageAt   time.Duration
	Damaged        bool // LastDamageAt is meaningful
}

func (h *HealthData) Alive() bool {
	return h.Current > 0
}

// Ratio returns Current/Max in [0, 1].
func (h *HealthData) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

// Invulnerable reports whether damage at now falls inside the window.
func (h *HealthData) Invulnerable(now time.Duration) bool {
	return h.Damaged && now-h.LastDamageAt < h.DamageCooldown
}

var Health = donburi.NewComponentType[HealthData]()
