package assets

import (
	"image/color"
	"math"

	"github.com/automoto/familiar/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// The critter is drawn in grayscale so per-familiar palette tints can be
// applied with a color scale at draw time.
var (
	bodyColor  = color.RGBA{225, 225, 230, 255}
	bellyColor = color.RGBA{245, 245, 248, 255}
	tailColor  = color.RGBA{190, 190, 200, 255}
	eyeWhite   = color.RGBA{255, 255, 255, 255}
	pupilColor = color.RGBA{25, 25, 30, 255}
	footColor  = color.RGBA{170, 170, 180, 255}
)

// generateSheet draws a horizontal strip of frames for one state. Frames face
// right; the renderer mirrors them for leftward movement.
func generateSheet(state config.StateID, frames int) *ebiten.Image {
	w := config.Familiar.FrameWidth
	h := config.Familiar.FrameHeight
	sheet := ebiten.NewImage(w*frames, h)

	for i := 0; i < frames; i++ {
		phase := float64(i) / float64(frames)
		switch state {
		case config.Running:
			drawCritter(sheet, float64(i*w), phase, true)
		default:
			drawCritter(sheet, float64(i*w), phase, false)
		}
	}
	return sheet
}

// drawCritter renders one 32x32 frame at x offset. phase is playback progress
// in [0,1); running frames bob harder and kick their feet.
func drawCritter(dst *ebiten.Image, x, phase float64, running bool) {
	bobAmp := 1.2
	if running {
		bobAmp = 3.0
	}
	bob := math.Sin(phase*2*math.Pi) * bobAmp

	cx := x + 16
	cy := 19.0 + bob

	// Tail trails behind (left; the critter faces right).
	tailSwing := math.Sin(phase*2*math.Pi+math.Pi/2) * 2
	vector.DrawFilledCircle(dst, float32(cx-10), float32(cy+2+tailSwing), 3.5, tailColor, true)

	// Feet: planted when idle, alternating when running.
	footDrop := 0.0
	if running {
		footDrop = 2.0
	}
	frontKick := math.Sin(phase*2*math.Pi) * footDrop
	backKick := math.Sin(phase*2*math.Pi+math.Pi) * footDrop
	vector.DrawFilledRect(dst, float32(cx-6), float32(27+backKick), 5, 3, footColor, true)
	vector.DrawFilledRect(dst, float32(cx+2), float32(27+frontKick), 5, 3, footColor, true)

	// Body and belly.
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), 9, bodyColor, true)
	vector.DrawFilledCircle(dst, float32(cx+1), float32(cy+3), 5.5, bellyColor, true)

	// Ear nub.
	vector.DrawFilledCircle(dst, float32(cx-3), float32(cy-8), 3, bodyColor, true)

	// Eye looks toward the travel direction.
	vector.DrawFilledCircle(dst, float32(cx+5), float32(cy-3), 3, eyeWhite, true)
	vector.DrawFilledCircle(dst, float32(cx+6), float32(cy-3), 1.5, pupilColor, true)
}
