package tags

import "github.com/yohamta/donburi"

var (
	Familiar = donburi.NewTag().SetName("Familiar")
	Marker   = donburi.NewTag().SetName("Marker")
	Obstacle = donburi.NewTag().SetName("Obstacle")
)

// Resolv tags for collision checks
const (
	ResolvSolid    = "solid"
	ResolvFamiliar = "familiar"
)
