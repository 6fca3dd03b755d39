package factory

import (
	"fmt"
	"image"

	"github.com/automoto/familiar/assets"
	"github.com/automoto/familiar/assets/animations"
	"github.com/automoto/familiar/components"
	cfg "github.com/automoto/familiar/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// GenerateAnimations creates an AnimationData component for a critter key.
// Panics on an unknown key to catch configuration errors early.
func GenerateAnimations(key string, frameWidth, frameHeight int) *components.AnimationData {
	defs, ok := cfg.CritterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("no animation definitions found for key: %s", key))
	}

	animData := &components.AnimationData{
		SpriteSheets: make(map[cfg.StateID]*ebiten.Image),
		Animations:   make(map[cfg.StateID]*animations.Animation),
		CachedFrames: make(map[cfg.StateID]map[int]*ebiten.Image),
		FrameWidth:   frameWidth,
		FrameHeight:  frameHeight,
		CurrentSheet: cfg.Idle,
	}

	for state, def := range defs {
		animData.SpriteSheets[state] = assets.GetSheet(key, state)
		animData.Animations[state] = animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)

		step := def.Step
		if step <= 0 {
			step = 1
		}
		frames := make(map[int]*ebiten.Image)
		for sheetIndex := def.First; sheetIndex <= def.Last; sheetIndex += step {
			sx := sheetIndex * frameWidth
			srcRect := image.Rect(sx, 0, sx+frameWidth, frameHeight)
			frames[sheetIndex] = assets.GetFrame(key, state, sheetIndex, srcRect)
		}
		animData.CachedFrames[state] = frames
	}

	return animData
}
