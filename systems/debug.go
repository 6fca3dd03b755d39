package systems

import (
	"fmt"

	"github.com/automoto/familiar/components"
	cfg "github.com/automoto/familiar/config"
	"github.com/automoto/familiar/fonts"
	"github.com/automoto/familiar/motion"
	"github.com/automoto/familiar/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug overlays per-familiar kinematics when the F1 toggle is on.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	pg := mustPlayground(e)
	if !pg.ShowDebug {
		return
	}

	face := fonts.SansSmall.Get()

	tags.Familiar.Each(e.World, func(entry *donburi.Entry) {
		familiar := components.Familiar.Get(entry)
		m := components.Motion.Get(entry)

		pos := m.Body.Position()
		vel := m.Body.Velocity()
		tgt := m.Body.Target()

		// Velocity vector, scaled down so it stays readable.
		vector.StrokeLine(screen,
			float32(pos.X), float32(pos.Y),
			float32(pos.X+vel.X*0.25), float32(pos.Y+vel.Y*0.25),
			1.5, cfg.Debug.VectorColor, true)

		// Line of pursuit to the current target.
		vector.StrokeLine(screen,
			float32(pos.X), float32(pos.Y),
			float32(tgt.X), float32(tgt.Y),
			0.5, cfg.Debug.TextColor, true)

		label := fmt.Sprintf("#%d v=%.0f d=%.0f",
			familiar.ChainIndex, vel.Length(), motion.Dist(pos, tgt))
		text.Draw(screen, label, face, int(pos.X)+14, int(pos.Y)-18, cfg.Debug.TextColor)
	})

	stats := fmt.Sprintf("tps %.0f  fps %.0f  familiars %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(), familiarCount(e))
	text.Draw(screen, stats, face, 8, 16, cfg.Debug.TextColor)
}
