package systems

import (
	"github.com/automoto/familiar/components"
	cfg "github.com/automoto/familiar/config"
	"github.com/automoto/familiar/motion"
	"github.com/automoto/familiar/tags"
	"github.com/automoto/familiar/target"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTuning toggles the tuning panel.
func UpdateTuning(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionToggleTuning).JustPressed {
		tun := mustTuning(e)
		tun.Open = !tun.Open
	}
}

// IsTuningOpen reports whether the tuning panel is showing.
func IsTuningOpen(e *ecs.ECS) bool {
	entry, ok := components.Tuning.First(e.World)
	if !ok {
		return false
	}
	return components.Tuning.Get(entry).Open
}

// SelectPreset loads a built-in preset into the panel's edit buffer.
func SelectPreset(e *ecs.ECS, index int) {
	tun := mustTuning(e)
	tun.PresetIndex = ((index % len(cfg.Presets)) + len(cfg.Presets)) % len(cfg.Presets)
	tun.Edited = cfg.Presets[tun.PresetIndex].Motion
	tun.Dirty = true
}

// AdjustTuning nudges one scalar of the edit buffer by dir steps.
func AdjustTuning(e *ecs.ECS, stepIndex int, dir float64) {
	if stepIndex < 0 || stepIndex >= len(cfg.TuningSteps) {
		return
	}
	tun := mustTuning(e)
	step := cfg.TuningSteps[stepIndex]
	*step.Get(&tun.Edited) += step.Step * dir
	cfg.ClampTuning(&tun.Edited)
	tun.Dirty = true
}

// ApplyTuning makes the edit buffer the live config and rebuilds every
// familiar's body with it. Config is immutable per body, so applying means
// swapping bodies wholesale at their current positions; chained followers are
// re-wired afterward because their Trail sources point at the old bodies.
func ApplyTuning(e *ecs.ECS) {
	tun := mustTuning(e)
	cfg.ClampTuning(&tun.Edited)
	cfg.Familiar.Motion = tun.Edited
	tun.Dirty = false

	tags.Familiar.Each(e.World, func(entry *donburi.Entry) {
		familiar := components.Familiar.Get(entry)
		m := components.Motion.Get(entry)

		mcfg := cfg.Familiar.Motion
		if familiar.ChainIndex > 0 {
			mcfg.StopWithin = cfg.Familiar.ChainSpacing
			if mcfg.BrakingStartDistance <= mcfg.StopWithin {
				mcfg.BrakingStartDistance = mcfg.StopWithin + 60
			}
		}

		body := motion.NewBody(mcfg, m.Body.Position())
		body.SetTarget(m.Body.Target())
		m.Body = body
		m.WasMoving = false
	})

	rewireChain(e)
	RetargetLead(e)
}

// rewireChain refreshes Trail sources after bodies have been replaced.
func rewireChain(e *ecs.ECS) {
	tags.Familiar.Each(e.World, func(entry *donburi.Entry) {
		familiar := components.Familiar.Get(entry)
		if familiar.ChainIndex == 0 {
			return
		}
		leader, ok := familiarByChainIndex(e, familiar.ChainIndex-1)
		if !ok {
			return
		}
		t := components.Target.Get(entry)
		t.Source = target.Trail{Body: components.Motion.Get(leader).Body}
	})
}

func mustTuning(e *ecs.ECS) *components.TuningData {
	entry, ok := components.Tuning.First(e.World)
	if !ok {
		panic("tuning entity missing")
	}
	return components.Tuning.Get(entry)
}
