package motion

// DefaultMoveThreshold is the speed (pixels/second) above which a body is
// considered to be moving for animation and event purposes. A tunable, but
// deliberately not part of Config.
const DefaultMoveThreshold = 10.0

// Body owns one kinematic state and one immutable Config. It is not safe for
// concurrent use; each familiar owns its own Body and advances it from the
// single game loop.
type Body struct {
	state State
	cfg   Config
}

// NewBody returns a body at rest at start, targeting its own position.
func NewBody(cfg Config, start Vec2) *Body {
	return &Body{
		state: State{Position: start, Target: start},
		cfg:   cfg,
	}
}

// SetTarget points the body at p. No bounds checking.
func (b *Body) SetTarget(p Vec2) {
	b.state.Target = p
}

// Relocate teleports the body to p without touching velocity or target.
// Used for spawn placement and collision pushback.
func (b *Body) Relocate(p Vec2) {
	b.state.Position = p
}

// Advance replaces the internal state with Step(state, cfg, dt).
func (b *Body) Advance(dt float64) {
	b.state = Step(b.state, b.cfg, dt)
}

// Position returns a copy of the current position.
func (b *Body) Position() Vec2 {
	return b.state.Position
}

// Velocity returns a copy of the current velocity.
func (b *Body) Velocity() Vec2 {
	return b.state.Velocity
}

// Target returns a copy of the current target point.
func (b *Body) Target() Vec2 {
	return b.state.Target
}

// Config returns the body's immutable configuration.
func (b *Body) Config() Config {
	return b.cfg
}

// Moving reports whether the body's speed exceeds threshold.
func (b *Body) Moving(threshold float64) bool {
	return b.state.Velocity.Length() > threshold
}
