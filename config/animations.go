package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
}

// CritterAnimations maps a critter key to its animation definitions per state.
// Frame counts match the procedurally generated sheets in the assets package.
var CritterAnimations = map[string]map[StateID]AnimationDef{
	"critter": {
		Idle:    {First: 0, Last: 3, Step: 1, Speed: 12},
		Running: {First: 0, Last: 5, Step: 1, Speed: 5},
	},
}
