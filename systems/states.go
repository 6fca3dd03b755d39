package systems

import (
	"math"

	"github.com/automoto/familiar/components"
	cfg "github.com/automoto/familiar/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// facingDeadband keeps the sprite from flip-flopping while the horizontal
// velocity hovers around zero.
const facingDeadband = 5.0

// UpdateStates derives Idle/Running and facing from the kernel's outputs.
// Runs after UpdateMotion so WasMoving reflects this tick.
func UpdateStates(e *ecs.ECS) {
	components.Familiar.Each(e.World, func(entry *donburi.Entry) {
		familiar := components.Familiar.Get(entry)
		m := components.Motion.Get(entry)
		state := components.State.Get(entry)

		state.StateTimer++

		desired := cfg.Idle
		if m.WasMoving {
			desired = cfg.Running
		}

		if vx := m.Body.Velocity().X; math.Abs(vx) > facingDeadband {
			familiar.Direction.X = 1
			if vx < 0 {
				familiar.Direction.X = -1
			}
		}

		if desired != state.CurrentState {
			state.PreviousState = state.CurrentState
			state.CurrentState = desired
			state.StateTimer = 0

			anim := components.Animation.Get(entry)
			anim.SetAnimation(desired)
		}
	})
}
