package components

import "github.com/yohamta/donburi"

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

type FamiliarData struct {
	Direction    Vector // facing; X < 0 mirrors the sprite
	PaletteIndex int
	ChainIndex   int // 0 = chases the anchor/pointer, n > 0 trails familiar n-1
}

var Familiar = donburi.NewComponentType[FamiliarData]()
