package systems

import (
	"github.com/automoto/familiar/components"
	cfg "github.com/automoto/familiar/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// UpdateInput polls the keyboard into the Input component. Must run before
// any system that reads actions.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

// GetAction derives the temporal state of an action from the input buffers.
func GetAction(input *components.InputData, id cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      input.Current[id],
		JustPressed:  input.Current[id] && !input.Previous[id],
		JustReleased: !input.Current[id] && input.Previous[id],
	}
}

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	if entry, ok := components.Input.First(e.World); ok {
		return components.Input.Get(entry)
	}
	entry := e.World.Entry(e.Create(cfg.Default, components.Input))
	return components.Input.Get(entry)
}
