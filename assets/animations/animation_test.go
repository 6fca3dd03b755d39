package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimationAdvancesAndWraps(t *testing.T) {
	a := NewAnimation(0, 2, 1, 1) // hold each frame 1 tick

	assert.Equal(t, 0, a.Frame())
	assert.False(t, a.Looped)

	frames := []int{}
	for i := 0; i < 12; i++ {
		a.Update()
		frames = append(frames, a.Frame())
	}
	assert.Equal(t, []int{0, 1, 1, 2, 2, 0, 0, 1, 1, 2, 2, 0}, frames)
	assert.True(t, a.Looped)
}

func TestAnimationHoldsFrames(t *testing.T) {
	a := NewAnimation(0, 5, 1, 4)

	for i := 0; i < 4; i++ {
		a.Update()
	}
	assert.Equal(t, 0, a.Frame(), "frame must hold for TicksPerFrame ticks")
	a.Update()
	assert.Equal(t, 1, a.Frame())
}

func TestAnimationRestart(t *testing.T) {
	a := NewAnimation(2, 8, 2, 1)
	for i := 0; i < 20; i++ {
		a.Update()
	}
	a.Restart()
	assert.Equal(t, 2, a.Frame())
	assert.False(t, a.Looped)
}
