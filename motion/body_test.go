package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBodyStartsAtRestOnTarget(t *testing.T) {
	start := Vec2{X: 120, Y: 80}
	b := NewBody(testConfig(), start)

	assert.Equal(t, start, b.Position())
	assert.Equal(t, start, b.Target())
	assert.Equal(t, Vec2{}, b.Velocity())
	assert.False(t, b.Moving(DefaultMoveThreshold))
}

func TestBodyAccessorsReturnCopies(t *testing.T) {
	b := NewBody(testConfig(), Vec2{X: 5, Y: 5})

	p := b.Position()
	p.X = 9999
	assert.Equal(t, Vec2{X: 5, Y: 5}, b.Position(), "mutating the returned value must not corrupt the body")

	v := b.Velocity()
	v.Y = -9999
	assert.Equal(t, Vec2{}, b.Velocity())
}

func TestBodySetTargetAndRelocate(t *testing.T) {
	b := NewBody(testConfig(), Vec2{})

	b.SetTarget(Vec2{X: 300, Y: 100})
	assert.Equal(t, Vec2{X: 300, Y: 100}, b.Target())

	b.Advance(0.016)
	vel := b.Velocity()
	assert.Greater(t, vel.Length(), 0.0)

	// Relocate moves position only.
	b.Relocate(Vec2{X: 50, Y: 50})
	assert.Equal(t, Vec2{X: 50, Y: 50}, b.Position())
	assert.Equal(t, vel, b.Velocity())
	assert.Equal(t, Vec2{X: 300, Y: 100}, b.Target())
}

func TestBodyConvergesAndStops(t *testing.T) {
	cfg := testConfig()
	b := NewBody(cfg, Vec2{})
	b.SetTarget(Vec2{X: 400, Y: -250})

	const dt = 1.0 / 60.0
	stopped := false
	for i := 0; i < 60*30; i++ {
		b.Advance(dt)
		if b.Velocity() == (Vec2{}) && Dist(b.Position(), b.Target()) <= cfg.StopWithin {
			stopped = true
			break
		}
	}
	require.True(t, stopped, "body must come to an exact rest near the target")

	// And stay there.
	pos := b.Position()
	for i := 0; i < 120; i++ {
		b.Advance(dt)
	}
	assert.Equal(t, pos, b.Position())
	assert.Equal(t, Vec2{}, b.Velocity())
}

func TestBodyChasesMovingTarget(t *testing.T) {
	b := NewBody(testConfig(), Vec2{})

	const dt = 1.0 / 60.0
	target := Vec2{X: 200}
	for i := 0; i < 60*10; i++ {
		target.X += 30 * dt // target drifts slower than MaxVelocity
		b.SetTarget(target)
		b.Advance(dt)
	}

	assert.Less(t, Dist(b.Position(), target), 120.0, "body must keep up with a slow target")
}

func TestBodyMovingThreshold(t *testing.T) {
	b := NewBody(testConfig(), Vec2{})
	b.SetTarget(Vec2{X: 500})

	for i := 0; i < 30; i++ {
		b.Advance(1.0 / 60.0)
	}

	speed := b.Velocity().Length()
	assert.True(t, b.Moving(speed-1))
	assert.False(t, b.Moving(speed+1))
}
