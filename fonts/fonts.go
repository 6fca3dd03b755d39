package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Sans      FontName = "sans"
	SansTitle FontName = "sans-title"
	SansSmall FontName = "sans-small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadAll parses the bundled typeface at the sizes the game uses. Called once
// at startup.
func LoadAll() {
	loadFontWithSize(Sans, goregular.TTF, 14)
	loadFontWithSize(SansTitle, goregular.TTF, 32)
	loadFontWithSize(SansSmall, goregular.TTF, 11)
}

func loadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, _ := truetype.Parse(ttf)
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("font %s not loaded", name))
	}
	return f
}
