// Package motion models a body that chases a moving target point using
// constant-magnitude acceleration toward the goal and distance-based braking.
// Step is a pure transition over an explicit state value; Body is the thin
// mutable wrapper the rest of the game drives once per tick.
package motion

// Config holds the chase kinematics for one body. All scalars are
// non-negative; BrakingStartDistance must be strictly greater than StopWithin
// or the braking ramp divides by zero. Neither is validated here — a Config is
// built once, from trusted presets, and is immutable for the body's lifetime.
type Config struct {
	MaxAccel             float64 // driving acceleration magnitude, pixels/s^2
	MaxVelocity          float64 // hard speed cap, pixels/s
	StopWithin           float64 // distance at which full braking applies
	BrakingStartDistance float64 // distance at which graduated braking begins
	BrakingStrength      float64 // braking coefficient at full brake, 1/s
	MinStopVelocity      float64 // speed below which the body may snap to rest
}

// State is the kinematic state advanced by Step. Mutated only by Step and the
// explicit setters on Body; never shared between bodies.
type State struct {
	Position Vec2
	Velocity Vec2
	Target   Vec2
}

// AccelerationToward returns an acceleration of magnitude exactly maxAccel
// pointing from pos to target, or the zero vector when pos == target (guards
// the normalization of a zero-length direction). The magnitude is never scaled
// by distance: the driving force is full throttle, and slowing down is the
// braking term's job.
func AccelerationToward(pos, target Vec2, maxAccel float64) Vec2 {
	d := Dist(pos, target)
	if d == 0 {
		return Vec2{}
	}
	return target.Sub(pos).Scale(maxAccel / d)
}

// brakingFactor returns the per-second velocity decay rate for a body at
// distance d from its target. Zero at or beyond brakeStart, strength at or
// inside stopWithin, linear ramp in between. brakeStart > stopWithin is a
// caller precondition.
func brakingFactor(d, stopWithin, brakeStart, strength float64) float64 {
	if d >= brakeStart {
		return 0
	}
	if d <= stopWithin {
		return strength
	}
	return strength * (1 - (d-stopWithin)/(brakeStart-stopWithin))
}

// Step advances state by dt seconds and returns the next state.
//
// When the body is both within StopWithin of the target and slower than
// MinStopVelocity it snaps to an exact rest: velocity becomes exactly zero and
// position is left untouched. Without the snap, float accumulation leaves the
// body jittering next to the target forever.
//
// Otherwise velocity integrates one semi-implicit Euler step: the driving
// acceleration plus a drag term proportional to current velocity, then a
// uniform rescale onto MaxVelocity if the cap is exceeded. Position integrates
// with the already-clamped new velocity — not the old one — so the cap applies
// to this tick's movement too.
func Step(state State, cfg Config, dt float64) State {
	d := Dist(state.Position, state.Target)

	if d <= cfg.StopWithin && state.Velocity.Length() <= cfg.MinStopVelocity {
		return State{
			Position: state.Position,
			Velocity: Vec2{},
			Target:   state.Target,
		}
	}

	accel := AccelerationToward(state.Position, state.Target, cfg.MaxAccel)
	brake := brakingFactor(d, cfg.StopWithin, cfg.BrakingStartDistance, cfg.BrakingStrength)

	vel := Vec2{
		X: state.Velocity.X + accel.X*dt - state.Velocity.X*brake*dt,
		Y: state.Velocity.Y + accel.Y*dt - state.Velocity.Y*brake*dt,
	}

	if speed := vel.Length(); speed > cfg.MaxVelocity {
		vel = vel.Scale(cfg.MaxVelocity / speed)
	}

	return State{
		Position: state.Position.Add(vel.Scale(dt)),
		Velocity: vel,
		Target:   state.Target,
	}
}
