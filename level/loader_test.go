package level

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPlayground(t *testing.T) {
	layout, err := Load(os.DirFS("../assets"), "levels/playground.tmx")
	require.NoError(t, err)

	assert.Equal(t, 960, layout.Width)
	assert.Equal(t, 544, layout.Height)
	assert.Len(t, layout.Obstacles, 5)
	assert.Len(t, layout.Spawns, 4)

	// Spawns come back sorted by index.
	for i, s := range layout.Spawns {
		assert.Equal(t, i, s.Index)
	}

	// The marker home sits inside the map.
	assert.Greater(t, layout.HomeX, 0.0)
	assert.Less(t, layout.HomeX, float64(layout.Width))
	assert.Greater(t, layout.HomeY, 0.0)
	assert.Less(t, layout.HomeY, float64(layout.Height))

	for _, r := range layout.Obstacles {
		assert.Greater(t, r.W, 0.0)
		assert.Greater(t, r.H, 0.0)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(os.DirFS("../assets"), "levels/nope.tmx")
	assert.Error(t, err)
}
