package systems

import (
	"github.com/automoto/familiar/components"
	cfg "github.com/automoto/familiar/config"
	"github.com/automoto/familiar/motion"
	"github.com/automoto/familiar/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves each familiar's collision box toward the position the
// kernel produced, axis-separated, stopping at solid obstacles. The resolved
// center is written back into the body so the kernel never integrates from
// inside a wall. Runs after UpdateMotion.
func UpdateCollisions(e *ecs.ECS) {
	tags.Familiar.Each(e.World, func(entry *donburi.Entry) {
		m := components.Motion.Get(entry)
		obj := components.Object.Get(entry)

		half := cfg.Familiar.CollisionSize / 2
		pos := m.Body.Position()
		dx := pos.X - half - obj.X
		dy := pos.Y - half - obj.Y

		obj.X += resolveAxis(obj.Object, dx, 0)
		obj.Y += resolveAxis(obj.Object, 0, dy)
		obj.Update()

		m.Body.Relocate(motion.Vec2{X: obj.X + half, Y: obj.Y + half})
	})
}

// resolveAxis returns the movement allowed along one axis before hitting a
// solid. Exactly one of dx, dy is nonzero.
func resolveAxis(obj *resolv.Object, dx, dy float64) float64 {
	d := dx + dy
	if d == 0 {
		return 0
	}

	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return d
	}
	solids := check.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		return d
	}

	contact := check.ContactWithObject(solids[0])
	if dx != 0 {
		return contact.X()
	}
	return contact.Y()
}
