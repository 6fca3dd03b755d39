// Package assets holds embedded level data and the procedurally generated
// critter sprite sheets.
package assets

import (
	"embed"
	"fmt"
	"image"

	"github.com/automoto/familiar/config"
	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed all:levels
var levelFS embed.FS

// PlaygroundLevel is the path of the default playground inside LevelFS.
const PlaygroundLevel = "levels/playground.tmx"

// LevelFS returns the embedded level filesystem.
func LevelFS() embed.FS {
	return levelFS
}

var (
	sheets     = map[string]map[config.StateID]*ebiten.Image{}
	frameCache = map[string]map[config.StateID]map[int]*ebiten.Image{}
)

// GetSheet returns the sprite sheet for a critter key and state, generating
// it on first use. Panics on an unknown key/state pair — that is a
// configuration error, not a runtime condition.
func GetSheet(key string, state config.StateID) *ebiten.Image {
	if sheet, ok := sheets[key][state]; ok {
		return sheet
	}

	defs, ok := config.CritterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("no animation definitions for key: %s", key))
	}
	def, ok := defs[state]
	if !ok {
		panic(fmt.Sprintf("no animation for key %s state %d", key, state))
	}

	sheet := generateSheet(state, def.Last+1)
	if sheets[key] == nil {
		sheets[key] = map[config.StateID]*ebiten.Image{}
	}
	sheets[key][state] = sheet
	return sheet
}

// GetFrame returns the cached subimage for one frame of a sheet.
func GetFrame(key string, state config.StateID, index int, rect image.Rectangle) *ebiten.Image {
	if img, ok := frameCache[key][state][index]; ok {
		return img
	}

	img := GetSheet(key, state).SubImage(rect).(*ebiten.Image)
	if frameCache[key] == nil {
		frameCache[key] = map[config.StateID]map[int]*ebiten.Image{}
	}
	if frameCache[key][state] == nil {
		frameCache[key][state] = map[int]*ebiten.Image{}
	}
	frameCache[key][state][index] = img
	return img
}

// PreloadAllAnimations generates every configured sheet up front so the first
// familiar does not stutter.
func PreloadAllAnimations() {
	for key, defs := range config.CritterAnimations {
		for state := range defs {
			GetSheet(key, state)
		}
	}
}
