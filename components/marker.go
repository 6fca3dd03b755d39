package components

import "github.com/yohamta/donburi"

// MarkerData is the visual state of the anchor marker. Scale is animated by a
// gween sequence on the same entity.
type MarkerData struct {
	X, Y    float64
	Scale   float64
	Pulsing bool
	Visible bool
}

var Marker = donburi.NewComponentType[MarkerData]()
