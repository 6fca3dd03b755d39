package factory

import (
	"github.com/automoto/familiar/archetypes"
	"github.com/automoto/familiar/components"
	cfg "github.com/automoto/familiar/config"
	"github.com/automoto/familiar/level"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayground spawns the singleton session entity.
func CreatePlayground(e *ecs.ECS, layout *level.Layout) *donburi.Entry {
	pg := archetypes.Playground.Spawn(e)
	components.Playground.SetValue(pg, components.PlaygroundData{
		Layout:        layout,
		FollowPointer: false,
		ShowDebug:     cfg.Debug.StartEnabled,
	})
	return pg
}

// CreateTuning spawns the singleton tuning-panel model seeded from the
// current familiar config.
func CreateTuning(e *ecs.ECS, presetIndex int) *donburi.Entry {
	t := archetypes.Tuning.Spawn(e)
	components.Tuning.SetValue(t, components.TuningData{
		Edited:      cfg.Familiar.Motion,
		PresetIndex: presetIndex,
	})
	return t
}
