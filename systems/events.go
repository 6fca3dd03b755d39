package systems

import (
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// UpdateEvents flushes queued world events to their subscribers. Runs last so
// subscribers observe this tick's final state.
func UpdateEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}
