package systems

import (
	"image"

	"github.com/automoto/familiar/components"
	cfg "github.com/automoto/familiar/config"
	"github.com/automoto/familiar/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawFamiliars renders every familiar's current animation frame, mirrored by
// facing and tinted by its palette color.
func DrawFamiliars(e *ecs.ECS, screen *ebiten.Image) {
	tags.Familiar.Each(e.World, func(entry *donburi.Entry) {
		familiar := components.Familiar.Get(entry)
		obj := components.Object.Get(entry)
		animData := components.Animation.Get(entry)

		if animData.CurrentAnimation == nil {
			return
		}
		frame := animData.CurrentAnimation.Frame()

		var img *ebiten.Image
		if frames, ok := animData.CachedFrames[animData.CurrentSheet]; ok {
			img = frames[frame]
		}
		// Fallback to runtime slicing if not cached (safety)
		if img == nil && animData.SpriteSheets[animData.CurrentSheet] != nil {
			sx := frame * animData.FrameWidth
			srcRect := image.Rect(sx, 0, sx+animData.FrameWidth, animData.FrameHeight)
			img = animData.SpriteSheets[animData.CurrentSheet].SubImage(srcRect).(*ebiten.Image)
		}
		if img == nil {
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		// Anchor at bottom-center so feet line up with the collision box.
		drawOp.GeoM.Translate(-float64(animData.FrameWidth)/2, -float64(animData.FrameHeight))
		if familiar.Direction.X < 0 {
			drawOp.GeoM.Scale(-1, 1)
		}
		drawOp.GeoM.Translate(obj.X+obj.W/2, obj.Y+obj.H)

		tint := cfg.Familiar.Palette[familiar.PaletteIndex]
		drawOp.ColorScale.ScaleWithColor(tint)

		screen.DrawImage(img, drawOp)
	})
}

// DrawMarkers renders the anchor marker: a dot plus a pulsing ring.
func DrawMarkers(e *ecs.ECS, screen *ebiten.Image) {
	components.Marker.Each(e.World, func(entry *donburi.Entry) {
		marker := components.Marker.Get(entry)
		if !marker.Visible {
			return
		}

		x := float32(marker.X)
		y := float32(marker.Y)
		r := float32(cfg.Marker.Radius)

		vector.DrawFilledCircle(screen, x, y, r, cfg.Marker.Color, true)
		vector.StrokeCircle(screen, x, y, r*float32(marker.Scale)*2, 2, cfg.Marker.RingColor, true)
	})
}

// DrawObstacles renders the solid rectangles.
func DrawObstacles(e *ecs.ECS, screen *ebiten.Image) {
	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)

		vector.DrawFilledRect(screen, x, y, w, h, cfg.Obstacle.FillColor, false)
		vector.StrokeRect(screen, x, y, w, h, 1, cfg.Obstacle.BorderColor, false)
	})
}
