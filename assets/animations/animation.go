package animations

import "time"

// Animation is a frame cursor driven by the simulation clock.
type Animation struct {
	Frames           int
	Interval         time.Duration // how long each frame is shown
	frame            int
	lastFrameAt      time.Duration
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

// Update advances the cursor by at most one frame and reports whether it ran
// past the last frame on this call.
func (a *Animation) Update(now time.Duration) bool {
	if a.Frames <= 0 || now-a.lastFrameAt < a.Interval {
		return false
	}
	a.lastFrameAt = now
	if a.Looped && a.FreezeOnComplete {
		return false
	}
	a.frame++
	if a.frame < a.Frames {
		return false
	}
	a.Looped = true
	if a.FreezeOnComplete {
		// Stay on last frame
		a.frame = a.Frames - 1
	} else {
		// loop back to the beginning
		a.frame = 0
	}
	return true
}

func (a *Animation) Frame() int {
	return a.frame
}

// LastFrameAt is the clock time of the last frame change or restart.
func (a *Animation) LastFrameAt() time.Duration {
	return a.lastFrameAt
}

// Restart rewinds to frame 0 and starts the frame timer at now.
func (a *Animation) Restart(now time.Duration) {
	a.frame = 0
	a.lastFrameAt = now
	a.Looped = false
}

func NewAnimation(frames int, interval time.Duration, now time.Duration) *Animation {
	return &Animation{
		Frames:      frames,
		Interval:    interval,
		lastFrameAt: now,
	}
}
