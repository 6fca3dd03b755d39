package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/familiar/config"
	"github.com/automoto/familiar/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const hudBarHeight = 22

// DrawHUD renders the key help line along the bottom edge.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.DrawFilledRect(screen,
		0, float32(height-hudBarHeight),
		float32(width), hudBarHeight,
		color.RGBA{0, 0, 0, 140}, false)

	face := fonts.SansSmall.Get()
	help := "click: drop anchor   P: chase pointer   H: recall home   F/R: spawn/remove   Tab: tuning   F1: debug"
	text.Draw(screen, help, face, 8, height-7, cfg.Debug.TextColor)

	pg := mustPlayground(e)
	mode := "anchor"
	if pg.FollowPointer {
		mode = "pointer"
	}
	status := fmt.Sprintf("%s · %d familiar(s)", mode, familiarCount(e))
	text.Draw(screen, status, face, width-150, height-7, cfg.Debug.TextColor)
}
