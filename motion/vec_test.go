package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVecOps(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: -1, Y: 2}

	assert.Equal(t, Vec2{X: 2, Y: 6}, a.Add(b))
	assert.Equal(t, Vec2{X: 4, Y: 2}, a.Sub(b))
	assert.Equal(t, Vec2{X: 6, Y: 8}, a.Scale(2))
	assert.Equal(t, 5.0, a.Length())
}

func TestDist(t *testing.T) {
	assert.Equal(t, 0.0, Dist(Vec2{X: 7, Y: -2}, Vec2{X: 7, Y: -2}))
	assert.Equal(t, 5.0, Dist(Vec2{}, Vec2{X: 3, Y: 4}))
	assert.Equal(t, Dist(Vec2{X: 1}, Vec2{X: 9}), Dist(Vec2{X: 9}, Vec2{X: 1}))
}
