package raycast

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func randomWalls(rng *rand.Rand, n int, w, h float64) []Segment {
	walls := make([]Segment, 0, n+4)
	for i := 0; i < n; i++ {
		walls = append(walls, NewSegment(
			float64(rng.Intn(int(w))), float64(rng.Intn(int(h))),
			float64(rng.Intn(int(w))), float64(rng.Intn(int(h))),
		))
	}
	return append(walls, box(w, h)...)
}

func TestScanParallelMatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	walls := randomWalls(rng, 40, 800, 600)
	for _, n := range []int{1, 5, 33, 360, 1024} {
		e := NewEmitter(r2.Vec{X: 412.5, Y: 287.25}, n)
		serial := e.Scan(walls)
		for _, workers := range []int{0, 1, 2, 3, 8, 64} {
			got := e.ScanParallel(nil, walls, workers)
			require.Equal(t, serial, got, "n=%d workers=%d", n, workers)
		}
	}
}

func TestSplitRaysCoversFan(t *testing.T) {
	for _, n := range []int{0, 1, 31, 32, 33, 360, 1000} {
		for _, workers := range []int{-1, 1, 4, 16} {
			chunks := splitRays(n, workers)
			next := 0
			for _, c := range chunks {
				assert.Equal(t, next, c.lo)
				assert.Greater(t, c.hi, c.lo)
				next = c.hi
			}
			assert.Equal(t, n, next, "n=%d workers=%d", n, workers)
		}
	}
}

func BenchmarkScanSerial(b *testing.B) {
	walls := randomWalls(rand.New(rand.NewSource(1)), 5, 800, 600)
	e := NewEmitter(r2.Vec{X: 400, Y: 300}, 360)
	hits := make([]Hit, 0, 360)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		hits = e.ScanInto(hits, walls)
	}
}

func BenchmarkScanParallel(b *testing.B) {
	walls := randomWalls(rand.New(rand.NewSource(1)), 200, 800, 600)
	e := NewEmitter(r2.Vec{X: 400, Y: 300}, 3600)
	hits := make([]Hit, 0, 3600)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		hits = e.ScanParallel(hits, walls, 0)
	}
}
