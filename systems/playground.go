package systems

import (
	"github.com/automoto/familiar/components"
	cfg "github.com/automoto/familiar/config"
	"github.com/automoto/familiar/motion"
	"github.com/automoto/familiar/systems/factory"
	"github.com/automoto/familiar/tags"
	"github.com/automoto/familiar/target"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayground handles session-level input: anchor placement, pointer
// follow, spawning and removing chained familiars, overlay toggles.
func UpdatePlayground(e *ecs.ECS) {
	pg := mustPlayground(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		pg.ShowDebug = !pg.ShowDebug
	}
	if GetAction(input, cfg.ActionFollowPointer).JustPressed {
		pg.FollowPointer = !pg.FollowPointer
		RetargetLead(e)
	}
	if GetAction(input, cfg.ActionRecallHome).JustPressed {
		pg.FollowPointer = false
		MoveMarker(e, pg.Layout.HomeX, pg.Layout.HomeY)
		RetargetLead(e)
	}
	if GetAction(input, cfg.ActionSpawnFamiliar).JustPressed {
		SpawnChained(e)
	}
	if GetAction(input, cfg.ActionRemoveFamiliar).JustPressed {
		RemoveLastFamiliar(e)
	}

	// Clicks drop the anchor — unless the tuning panel is up and owns them.
	if !IsTuningOpen(e) && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		pg.FollowPointer = false
		MoveMarker(e, float64(x), float64(y))
		RetargetLead(e)
	}
}

// RetargetLead points the chain's first familiar at whatever it should chase
// now: the live pointer or the dropped anchor.
func RetargetLead(e *ecs.ECS) {
	lead, ok := familiarByChainIndex(e, 0)
	if !ok {
		return
	}
	pg := mustPlayground(e)
	t := components.Target.Get(lead)

	if pg.FollowPointer {
		t.Source = target.Pointer{}
		return
	}
	if markerEntry, ok := components.Marker.First(e.World); ok {
		marker := components.Marker.Get(markerEntry)
		t.Source = target.Point{At: motion.Vec2{X: marker.X, Y: marker.Y}}
	}
}

// SpawnChained adds a familiar to the end of the chain, up to the configured
// cap. The first familiar chases the anchor; later ones trail their
// predecessor at ChainSpacing by widening the stop radius.
func SpawnChained(e *ecs.ECS) *donburi.Entry {
	count := familiarCount(e)
	if count >= cfg.Familiar.MaxCount {
		return nil
	}

	pg := mustPlayground(e)
	sp := pg.Layout.Spawns[count%len(pg.Layout.Spawns)]

	mcfg := cfg.Familiar.Motion
	var src target.Source
	if count == 0 {
		src = target.Point{At: motion.Vec2{X: pg.Layout.HomeX, Y: pg.Layout.HomeY}}
	} else {
		leader, ok := familiarByChainIndex(e, count-1)
		if !ok {
			return nil
		}
		src = target.Trail{Body: components.Motion.Get(leader).Body}
		mcfg.StopWithin = cfg.Familiar.ChainSpacing
		if mcfg.BrakingStartDistance <= mcfg.StopWithin {
			mcfg.BrakingStartDistance = mcfg.StopWithin + 60
		}
	}

	familiar := factory.CreateFamiliar(e, sp.X, sp.Y, count, src, mcfg)
	if count == 0 {
		RetargetLead(e)
	}
	return familiar
}

// RemoveLastFamiliar despawns the end of the chain. The lead always stays.
func RemoveLastFamiliar(e *ecs.ECS) {
	count := familiarCount(e)
	if count <= 1 {
		return
	}
	entry, ok := familiarByChainIndex(e, count-1)
	if !ok {
		return
	}

	obj := components.Object.Get(entry)
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Remove(obj.Object)
	}
	e.World.Remove(entry.Entity())
}

func familiarCount(e *ecs.ECS) int {
	count := 0
	tags.Familiar.Each(e.World, func(*donburi.Entry) {
		count++
	})
	return count
}

func familiarByChainIndex(e *ecs.ECS, index int) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Familiar.Each(e.World, func(entry *donburi.Entry) {
		if components.Familiar.Get(entry).ChainIndex == index {
			found = entry
		}
	})
	return found, found != nil
}

func mustPlayground(e *ecs.ECS) *components.PlaygroundData {
	entry, ok := components.Playground.First(e.World)
	if !ok {
		panic("playground entity missing")
	}
	return components.Playground.Get(entry)
}
