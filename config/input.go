package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionFollowPointer
	ActionRecallHome
	ActionSpawnFamiliar
	ActionRemoveFamiliar
	ActionToggleTuning
	ActionToggleDebug
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key bindings for an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionFollowPointer: {
				Keys: []ebiten.Key{ebiten.KeyP},
			},
			ActionRecallHome: {
				Keys: []ebiten.Key{ebiten.KeyH},
			},
			ActionSpawnFamiliar: {
				Keys: []ebiten.Key{ebiten.KeyF},
			},
			ActionRemoveFamiliar: {
				Keys: []ebiten.Key{ebiten.KeyR},
			},
			ActionToggleTuning: {
				Keys: []ebiten.Key{ebiten.KeyTab},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
			ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			},
			ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
	}
}
