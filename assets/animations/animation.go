// Package animations provides the tick-driven frame stepper used by the
// familiar sprite sheets.
package animations

type Animation struct {
	First         int
	Last          int
	Step          int     // how many sheet indices to move per advance
	TicksPerFrame float32 // game ticks to hold each frame
	tickCounter   float32
	frame         int
	Looped        bool // set once playback has wrapped at least once
}

func NewAnimation(first, last, step int, ticksPerFrame float32) *Animation {
	return &Animation{
		First:         first,
		Last:          last,
		Step:          step,
		TicksPerFrame: ticksPerFrame,
		tickCounter:   ticksPerFrame,
		frame:         first,
	}
}

// Update advances the stepper by one game tick.
func (a *Animation) Update() {
	a.tickCounter -= 1.0
	if a.tickCounter >= 0.0 {
		return
	}
	a.tickCounter = a.TicksPerFrame
	a.frame += a.Step
	if a.frame > a.Last {
		a.Looped = true
		a.frame = a.First
	}
}

// Frame returns the current sheet index.
func (a *Animation) Frame() int {
	return a.frame
}

// Restart rewinds playback to the first frame.
func (a *Animation) Restart() {
	a.frame = a.First
	a.tickCounter = a.TicksPerFrame
	a.Looped = false
}
