package motion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig mirrors the tuning the playground ships by default.
func testConfig() Config {
	return Config{
		MaxAccel:             100,
		MaxVelocity:          200,
		StopWithin:           30,
		BrakingStartDistance: 100,
		BrakingStrength:      8,
		MinStopVelocity:      10,
	}
}

func TestAccelerationTowardZeroDistance(t *testing.T) {
	points := []Vec2{{}, {3, -4}, {1e6, 1e6}}
	for _, p := range points {
		assert.Equal(t, Vec2{}, AccelerationToward(p, p, 100))
		assert.Equal(t, Vec2{}, AccelerationToward(p, p, 0))
	}
}

func TestAccelerationTowardMagnitudeAndDirection(t *testing.T) {
	pos := Vec2{X: 10, Y: 20}
	target := Vec2{X: 70, Y: -60}
	maxAccel := 140.0

	a := AccelerationToward(pos, target, maxAccel)
	assert.InDelta(t, maxAccel, a.Length(), 1e-9)

	// Direction must be the unit vector from pos to target.
	dir := target.Sub(pos)
	unit := dir.Scale(1 / dir.Length())
	assert.InDelta(t, unit.X, a.X/maxAccel, 1e-9)
	assert.InDelta(t, unit.Y, a.Y/maxAccel, 1e-9)
}

func TestAccelerationNeverPartial(t *testing.T) {
	// Magnitude does not scale with distance: near or far, full throttle.
	near := AccelerationToward(Vec2{}, Vec2{X: 0.001}, 100)
	far := AccelerationToward(Vec2{}, Vec2{X: 10000}, 100)
	assert.InDelta(t, 100, near.Length(), 1e-9)
	assert.InDelta(t, 100, far.Length(), 1e-9)
}

func TestBrakingFactorRamp(t *testing.T) {
	const (
		stopWithin = 30.0
		brakeStart = 100.0
		strength   = 8.0
	)

	assert.Equal(t, 0.0, brakingFactor(100, stopWithin, brakeStart, strength))
	assert.Equal(t, 0.0, brakingFactor(250, stopWithin, brakeStart, strength))
	assert.Equal(t, strength, brakingFactor(30, stopWithin, brakeStart, strength))
	assert.Equal(t, strength, brakingFactor(0, stopWithin, brakeStart, strength))
	assert.InDelta(t, 4.0, brakingFactor(65, stopWithin, brakeStart, strength), 1e-9)

	// Non-increasing as distance grows across the ramp.
	prev := math.Inf(1)
	for d := 30.0; d <= 100.0; d += 0.5 {
		cur := brakingFactor(d, stopWithin, brakeStart, strength)
		assert.LessOrEqual(t, cur, prev, "braking must not increase with distance (d=%v)", d)
		prev = cur
	}
}

func TestStepFullStopShortCircuit(t *testing.T) {
	cfg := testConfig()
	state := State{
		Position: Vec2{X: 99.5},
		Velocity: Vec2{X: 5},
		Target:   Vec2{X: 100},
	}

	next := Step(state, cfg, 0.016)
	assert.Equal(t, Vec2{}, next.Velocity, "velocity must snap to exactly zero")
	assert.Equal(t, state.Position, next.Position, "position must be untouched by the snap")
	assert.Equal(t, state.Target, next.Target)
}

func TestStepSpeedCap(t *testing.T) {
	cfg := testConfig()
	cfg.MaxAccel = 1e7 // force the clamp

	state := State{Position: Vec2{}, Target: Vec2{X: 500, Y: 200}}
	for i := 0; i < 50; i++ {
		state = Step(state, cfg, 0.016)
		assert.LessOrEqual(t, state.Velocity.Length(), cfg.MaxVelocity+1e-9)
	}
}

func TestStepNoBrakingFarAway(t *testing.T) {
	cfg := testConfig()
	state := State{Position: Vec2{}, Target: Vec2{X: 150}}

	next := Step(state, cfg, 0.016)
	// Starting at rest beyond BrakingStartDistance, the velocity change is the
	// undamped acceleration integration and nothing else.
	assert.InDelta(t, cfg.MaxAccel*0.016, next.Velocity.X, 1e-12)
	assert.Equal(t, 0.0, next.Velocity.Y)
}

func TestStepScenarioAccelerateFromRest(t *testing.T) {
	cfg := testConfig()
	state := State{Position: Vec2{}, Target: Vec2{X: 100}}

	next := Step(state, cfg, 0.016)
	assert.Greater(t, next.Velocity.X, 0.0)
	assert.Equal(t, 0.0, next.Velocity.Y)
	assert.Greater(t, next.Position.X, 0.0)
}

func TestStepScenarioBrakingReducesSpeed(t *testing.T) {
	cfg := testConfig()
	state := State{
		Position: Vec2{X: 95},
		Velocity: Vec2{X: 50},
		Target:   Vec2{X: 100},
	}

	next := Step(state, cfg, 0.016)
	assert.Less(t, next.Velocity.X, 50.0, "inside the braking zone speed must drop")
}

func TestStepScenarioCruiseGainsSpeed(t *testing.T) {
	cfg := testConfig()
	state := State{
		Position: Vec2{},
		Velocity: Vec2{X: 50},
		Target:   Vec2{X: 150}, // beyond BrakingStartDistance
	}

	next := Step(state, cfg, 0.016)
	assert.Greater(t, next.Velocity.X, 50.0)
}

func TestStepIdempotentAtRest(t *testing.T) {
	cfg := testConfig()
	state := State{Position: Vec2{X: 42, Y: 7}, Target: Vec2{X: 42, Y: 7}}

	for i := 0; i < 1000; i++ {
		next := Step(state, cfg, 0.016)
		require.Equal(t, state, next, "resting state must be a fixed point (tick %d)", i)
		state = next
	}
}

func TestStepPositionUsesClampedVelocity(t *testing.T) {
	cfg := testConfig()
	cfg.MaxAccel = 1e7

	state := State{Position: Vec2{}, Target: Vec2{X: 1000}}
	next := Step(state, cfg, 0.016)

	// One tick of clamped velocity, no more.
	assert.InDelta(t, cfg.MaxVelocity*0.016, next.Position.X, 1e-9)
}

func TestStepZeroDt(t *testing.T) {
	cfg := testConfig()
	state := State{
		Position: Vec2{X: 10},
		Velocity: Vec2{X: 60},
		Target:   Vec2{X: 300},
	}

	next := Step(state, cfg, 0)
	assert.Equal(t, state, next)
}
