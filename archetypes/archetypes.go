package archetypes

import (
	"github.com/automoto/familiar/components"
	cfg "github.com/automoto/familiar/config"
	"github.com/automoto/familiar/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Familiar = newArchetype(
		tags.Familiar,
		components.Familiar,
		components.Motion,
		components.Target,
		components.Object,
		components.State,
		components.Animation,
	)
	Marker = newArchetype(
		tags.Marker,
		components.Marker,
		components.Tween,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Playground = newArchetype(
		components.Playground,
	)
	Tuning = newArchetype(
		components.Tuning,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
