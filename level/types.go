// Package level provides TMX playground parsing. It is pure data — no
// dependencies on ebitengine, donburi, or resolv — so the loader is testable
// without a window.
package level

// Layout holds everything parsed from a playground TMX file.
type Layout struct {
	Obstacles []Rect
	Spawns    []Spawn
	HomeX     float64
	HomeY     float64
	Width     int
	Height    int
}

// Rect is a solid rectangle familiars cannot pass through.
type Rect struct {
	X, Y, W, H float64
}

// Spawn is a familiar spawn location.
type Spawn struct {
	X, Y  float64
	Index int
}
