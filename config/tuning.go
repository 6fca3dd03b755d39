package config

import "github.com/automoto/familiar/motion"

// TuningPreset is a named chase-kinematics configuration selectable from the
// menu and the tuning panel. Every preset keeps BrakingStartDistance strictly
// above StopWithin; the braking ramp is undefined when they are equal.
type TuningPreset struct {
	Name   string
	Motion motion.Config
}

// Presets are the built-in tunings. Index 0 is the default.
var Presets = []TuningPreset{
	{
		Name: "Snappy",
		Motion: motion.Config{
			MaxAccel:             900,
			MaxVelocity:          420,
			StopWithin:           30,
			BrakingStartDistance: 100,
			BrakingStrength:      8,
			MinStopVelocity:      10,
		},
	},
	{
		Name: "Floaty",
		Motion: motion.Config{
			MaxAccel:             350,
			MaxVelocity:          260,
			StopWithin:           40,
			BrakingStartDistance: 180,
			BrakingStrength:      4,
			MinStopVelocity:      12,
		},
	},
	{
		Name: "Heavy",
		Motion: motion.Config{
			MaxAccel:             500,
			MaxVelocity:          180,
			StopWithin:           24,
			BrakingStartDistance: 90,
			BrakingStrength:      12,
			MinStopVelocity:      8,
		},
	},
}

// TuningStep holds the increment the panel applies per click for each scalar.
type TuningStep struct {
	Label string
	Step  float64
	Min   float64
	Max   float64
	Get   func(*motion.Config) *float64
}

// TuningSteps drives the tuning panel rows. The Min bounds keep edited
// configs inside the kernel's documented preconditions.
var TuningSteps = []TuningStep{
	{Label: "max accel", Step: 50, Min: 50, Max: 3000,
		Get: func(c *motion.Config) *float64 { return &c.MaxAccel }},
	{Label: "max velocity", Step: 20, Min: 20, Max: 1000,
		Get: func(c *motion.Config) *float64 { return &c.MaxVelocity }},
	{Label: "stop within", Step: 4, Min: 4, Max: 120,
		Get: func(c *motion.Config) *float64 { return &c.StopWithin }},
	{Label: "braking start", Step: 10, Min: 20, Max: 400,
		Get: func(c *motion.Config) *float64 { return &c.BrakingStartDistance }},
	{Label: "braking strength", Step: 1, Min: 1, Max: 30,
		Get: func(c *motion.Config) *float64 { return &c.BrakingStrength }},
	{Label: "min stop velocity", Step: 2, Min: 2, Max: 60,
		Get: func(c *motion.Config) *float64 { return &c.MinStopVelocity }},
}

// ClampTuning snaps an edited config back inside the panel bounds and keeps
// the braking ramp well-formed.
func ClampTuning(c *motion.Config) {
	for _, s := range TuningSteps {
		v := s.Get(c)
		if *v < s.Min {
			*v = s.Min
		}
		if *v > s.Max {
			*v = s.Max
		}
	}
	if c.BrakingStartDistance <= c.StopWithin {
		c.BrakingStartDistance = c.StopWithin + 1
	}
}
