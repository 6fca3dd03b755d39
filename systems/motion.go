package systems

import (
	"github.com/automoto/familiar/components"
	cfg "github.com/automoto/familiar/config"
	"github.com/automoto/familiar/events"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tickSeconds is the elapsed time one update tick represents. Ebitengine runs
// a fixed tick rate, so this is the frame delta the kernel integrates with.
func tickSeconds() float64 {
	return 1.0 / float64(ebiten.TPS())
}

// UpdateMotion resolves every familiar's target source, advances its body one
// tick, and edge-triggers movement start/stop events. The kernel stays pure;
// transition detection lives here.
func UpdateMotion(e *ecs.ECS) {
	dt := tickSeconds()

	components.Motion.Each(e.World, func(entry *donburi.Entry) {
		m := components.Motion.Get(entry)

		if t := components.Target.Get(entry); t.Source != nil {
			m.Body.SetTarget(t.Source.Position())
		}

		m.Body.Advance(dt)

		moving := m.Body.Moving(cfg.Familiar.MoveThreshold)
		if moving != m.WasMoving {
			ev := events.Movement{Entry: entry, Speed: m.Body.Velocity().Length()}
			if moving {
				events.MovementStarted.Publish(e.World, ev)
			} else {
				events.MovementStopped.Publish(e.World, ev)
			}
		}
		m.WasMoving = moving
	})
}
