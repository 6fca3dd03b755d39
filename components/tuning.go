package components

import (
	"github.com/automoto/familiar/motion"
	"github.com/yohamta/donburi"
)

// TuningData is the model behind the tuning panel. Edited holds the config
// being adjusted; it only reaches the familiars when the panel applies it.
type TuningData struct {
	Open        bool
	Edited      motion.Config
	PresetIndex int
	Dirty       bool // edits not yet applied to live familiars
}

var Tuning = donburi.NewComponentType[TuningData]()
