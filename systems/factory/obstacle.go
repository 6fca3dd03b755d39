package factory

import (
	"github.com/automoto/familiar/archetypes"
	"github.com/automoto/familiar/components"
	"github.com/automoto/familiar/level"
	"github.com/automoto/familiar/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateObstacle spawns a solid rectangle familiars collide with.
func CreateObstacle(e *ecs.ECS, r level.Rect) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(e)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H)
	obj.AddTags(tags.ResolvSolid)
	obj.Data = obstacle
	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return obstacle
}
