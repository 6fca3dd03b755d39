package factory

import (
	"github.com/automoto/familiar/archetypes"
	"github.com/automoto/familiar/components"
	cfg "github.com/automoto/familiar/config"
	"github.com/automoto/familiar/motion"
	"github.com/automoto/familiar/tags"
	"github.com/automoto/familiar/target"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFamiliar spawns a critter at (x, y) chasing src with the given chase
// kinematics. chainIndex orders the follow chain; the palette tint cycles
// with it.
func CreateFamiliar(e *ecs.ECS, x, y float64, chainIndex int, src target.Source, mcfg motion.Config) *donburi.Entry {
	familiar := archetypes.Familiar.Spawn(e)

	size := cfg.Familiar.CollisionSize
	obj := resolv.NewObject(x-size/2, y-size/2, size, size)
	obj.AddTags(tags.ResolvFamiliar)
	obj.Data = familiar
	components.Object.SetValue(familiar, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Familiar.SetValue(familiar, components.FamiliarData{
		Direction:    components.Vector{X: 1, Y: 0},
		PaletteIndex: chainIndex % len(cfg.Familiar.Palette),
		ChainIndex:   chainIndex,
	})
	components.Motion.SetValue(familiar, components.MotionData{
		Body: motion.NewBody(mcfg, motion.Vec2{X: x, Y: y}),
	})
	components.Target.SetValue(familiar, components.TargetData{Source: src})
	components.State.SetValue(familiar, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})

	animData := GenerateAnimations("critter", cfg.Familiar.FrameWidth, cfg.Familiar.FrameHeight)
	animData.CurrentAnimation = animData.Animations[cfg.Idle]
	components.Animation.Set(familiar, animData)

	return familiar
}
