package level

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

// Load parses a playground TMX file and returns its layout. It takes an fs.FS
// so callers can pass embed.FS or os.DirFS.
//
// Expected structure: an "obstacles" object group of solid rectangles and an
// "anchors" object group holding the marker home point (named "home") and any
// number of spawn points (named "spawn", ordered by the "spawnIndex" property).
func Load(fsys fs.FS, tmxPath string) (*Layout, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case "obstacles":
			for _, o := range og.Objects {
				layout.Obstacles = append(layout.Obstacles, Rect{
					X: o.X, Y: o.Y, W: o.Width, H: o.Height,
				})
			}
		case "anchors":
			for _, o := range og.Objects {
				switch o.Name {
				case "home":
					layout.HomeX = o.X
					layout.HomeY = o.Y
				case "spawn":
					layout.Spawns = append(layout.Spawns, Spawn{
						X:     o.X,
						Y:     o.Y,
						Index: o.Properties.GetInt("spawnIndex"),
					})
				}
			}
		}
	}

	if len(layout.Spawns) == 0 {
		return nil, fmt.Errorf("no spawn points in %s", tmxPath)
	}

	sort.Slice(layout.Spawns, func(i, j int) bool {
		return layout.Spawns[i].Index < layout.Spawns[j].Index
	})

	return layout, nil
}
