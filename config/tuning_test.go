package config

import (
	"testing"

	"github.com/automoto/familiar/motion"
	"github.com/stretchr/testify/assert"
)

func TestPresetsKeepBrakingRampWellFormed(t *testing.T) {
	for _, p := range Presets {
		assert.Greater(t, p.Motion.BrakingStartDistance, p.Motion.StopWithin,
			"preset %q must keep the braking ramp defined", p.Name)
		assert.Greater(t, p.Motion.MaxAccel, 0.0, p.Name)
		assert.Greater(t, p.Motion.MaxVelocity, 0.0, p.Name)
	}
}

func TestClampTuningEnforcesBounds(t *testing.T) {
	c := motion.Config{
		MaxAccel:             1e9,
		MaxVelocity:          -5,
		StopWithin:           120,
		BrakingStartDistance: 40,
		BrakingStrength:      0,
		MinStopVelocity:      10,
	}
	ClampTuning(&c)

	assert.Equal(t, 3000.0, c.MaxAccel)
	assert.Equal(t, 20.0, c.MaxVelocity)
	assert.Greater(t, c.BrakingStartDistance, c.StopWithin)
	assert.GreaterOrEqual(t, c.BrakingStrength, 1.0)
}

func TestDefaultFamiliarMotionMatchesFirstPreset(t *testing.T) {
	assert.Equal(t, Presets[0].Motion, Familiar.Motion)
}
