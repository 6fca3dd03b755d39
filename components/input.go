package components

import (
	"github.com/automoto/familiar/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all
// actions. JustPressed is computed on demand by comparing the two frames.
type InputData struct {
	Current  [config.ActionCount]bool
	Previous [config.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()
