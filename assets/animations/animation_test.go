package animations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const interval = 100 * time.Millisecond

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation(3, interval, 0)

	assert.False(t, a.Update(interval-1))
	assert.Equal(t, 0, a.Frame())

	assert.False(t, a.Update(interval))
	assert.False(t, a.Update(2*interval))
	assert.Equal(t, 2, a.Frame())

	assert.True(t, a.Update(3*interval))
	assert.Equal(t, 0, a.Frame())
	assert.True(t, a.Looped)
}

func TestAnimationAdvancesOneFramePerUpdate(t *testing.T) {
	a := NewAnimation(4, interval, 0)

	a.Update(10 * interval)
	assert.Equal(t, 1, a.Frame())
	assert.Equal(t, 10*interval, a.LastFrameAt())
}

func TestAnimationFreezeOnComplete(t *testing.T) {
	a := NewAnimation(2, interval, 0)
	a.FreezeOnComplete = true

	assert.False(t, a.Update(interval))
	assert.True(t, a.Update(2*interval))
	assert.Equal(t, 1, a.Frame())

	// once frozen it never reports overflow again
	assert.False(t, a.Update(3*interval))
	assert.Equal(t, 1, a.Frame())
}

func TestAnimationRestart(t *testing.T) {
	a := NewAnimation(3, interval, 0)
	a.Update(interval)
	a.Update(2 * interval)

	a.Restart(5 * interval)
	assert.Equal(t, 0, a.Frame())
	assert.False(t, a.Looped)
	assert.False(t, a.Update(5*interval+interval/2))
	assert.False(t, a.Update(6*interval))
	assert.Equal(t, 1, a.Frame())
}

func TestAnimationWithoutFrames(t *testing.T) {
	a := NewAnimation(0, interval, 0)
	assert.False(t, a.Update(time.Hour))
	assert.Equal(t, 0, a.Frame())
}
