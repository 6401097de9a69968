package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raycast2d/raycast"
)

func TestBorderWallsCloseTheWindow(t *testing.T) {
	walls := BorderWalls(800, 600)
	require.Len(t, walls, 4)
	for i, w := range walls {
		next := walls[(i+1)%len(walls)]
		assert.Equal(t, w.End, next.Begin, "border %d is not joined to %d", i, i+1)
	}
	assert.Equal(t, raycast.NewSegment(0, 0, 800, 0), walls[0])
}

func TestRandomWallsStayInsideWindow(t *testing.T) {
	walls := RandomWalls(rand.New(rand.NewSource(3)), 500, 80, 60)
	require.Len(t, walls, 500)
	for _, w := range walls {
		for _, p := range []float64{w.Begin.X, w.End.X} {
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 80.0)
		}
		for _, p := range []float64{w.Begin.Y, w.End.Y} {
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 60.0)
		}
	}
}

func TestRandomWallsDeterministicForSeed(t *testing.T) {
	a := RandomWalls(rand.New(rand.NewSource(99)), 10, 800, 600)
	b := RandomWalls(rand.New(rand.NewSource(99)), 10, 800, 600)
	assert.Equal(t, a, b)
}
