package config

import (
	"image/color"

	"github.com/automoto/familiar/motion"
)

// WindowConfig contains the window/game surface configuration
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// FamiliarConfig contains all familiar-related configuration values
type FamiliarConfig struct {
	// Chase kinematics used for newly spawned familiars. Swapped wholesale
	// when a tuning preset is applied; never mutated in place.
	Motion motion.Config

	// Dimensions
	FrameWidth    int
	FrameHeight   int
	CollisionSize float64

	// Chained following
	ChainSpacing float64 // distance each familiar trails behind its leader
	MaxCount     int

	// Speed above which the run animation and movement events kick in
	MoveThreshold float64

	// Tint colors cycled through as familiars spawn
	Palette []color.RGBA
}

// MarkerConfig contains anchor marker configuration
type MarkerConfig struct {
	Radius        float64
	PulseScale    float64
	PulseDuration float32 // seconds, gween works in float32
	Color         color.RGBA
	RingColor     color.RGBA
}

// ObstacleConfig contains obstacle rendering configuration
type ObstacleConfig struct {
	FillColor   color.RGBA
	BorderColor color.RGBA
}

// DebugConfig contains debug overlay configuration
type DebugConfig struct {
	StartEnabled bool
	TextColor    color.RGBA
	VectorColor  color.RGBA
	SkipMenu     bool
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
}

var (
	C        WindowConfig
	Familiar FamiliarConfig
	Marker   MarkerConfig
	Obstacle ObstacleConfig
	Debug    DebugConfig
	Menu     MenuConfig
)

func init() {
	C = WindowConfig{
		Width:  960,
		Height: 544,
		Title:  "Familiar",
	}

	Familiar = FamiliarConfig{
		Motion: motion.Config{
			MaxAccel:             900,
			MaxVelocity:          420,
			StopWithin:           30,
			BrakingStartDistance: 100,
			BrakingStrength:      8,
			MinStopVelocity:      10,
		},
		FrameWidth:    32,
		FrameHeight:   32,
		CollisionSize: 20,
		ChainSpacing:  44,
		MaxCount:      8,
		MoveThreshold: motion.DefaultMoveThreshold,
		Palette: []color.RGBA{
			{255, 255, 255, 255},
			{255, 184, 108, 255},
			{139, 233, 253, 255},
			{189, 147, 249, 255},
			{80, 250, 123, 255},
			{255, 121, 198, 255},
		},
	}

	Marker = MarkerConfig{
		Radius:        6,
		PulseScale:    2.2,
		PulseDuration: 0.35,
		Color:         color.RGBA{241, 250, 140, 255},
		RingColor:     color.RGBA{241, 250, 140, 90},
	}

	Obstacle = ObstacleConfig{
		FillColor:   color.RGBA{58, 60, 78, 255},
		BorderColor: color.RGBA{98, 102, 132, 255},
	}

	Debug = DebugConfig{
		StartEnabled: false,
		TextColor:    color.RGBA{220, 220, 220, 255},
		VectorColor:  color.RGBA{255, 85, 85, 200},
		SkipMenu:     false,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{24, 25, 38, 255},
		TitleColor:        color.RGBA{241, 250, 140, 255},
		TextColorNormal:   color.RGBA{170, 170, 180, 255},
		TextColorSelected: color.RGBA{255, 255, 255, 255},
		TitleY:            150,
		MenuStartY:        260,
		MenuItemHeight:    34,
	}
}
