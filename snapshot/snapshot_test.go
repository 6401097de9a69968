package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"raycast2d/sim"
)

func newWorld(t *testing.T) *sim.World {
	t.Helper()
	s := sim.DefaultSettings()
	s.Seed = 99
	s.Rays = 90
	w, err := sim.NewWorld(s)
	require.NoError(t, err)
	return w
}

func TestRunWritesPNG(t *testing.T) {
	w := newWorld(t)
	path := filepath.Join(t.TempDir(), "frame.png")
	motion := sim.NewFixedMotion(r2.Vec{X: 250, Y: 250})

	require.NoError(t, Run(w, motion, 10, path))
	assert.Equal(t, uint64(10), w.Steps())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 8)
	assert.Equal(t, "\x89PNG", string(data[:4]))
}

func TestRunWithNoiseMotionSVG(t *testing.T) {
	w := newWorld(t)
	s := w.Settings()
	motion := sim.NewNoiseMotion(float64(s.Width), float64(s.Height), s.NoiseStep, s.NoiseYOffset, 3)
	path := filepath.Join(t.TempDir(), "frame.svg")

	require.NoError(t, Run(w, motion, 50, path))
	assert.Equal(t, 50, w.Trail().Len())
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRunRejectsZeroSteps(t *testing.T) {
	w := newWorld(t)
	err := Run(w, sim.NewFixedMotion(w.Center()), 0, filepath.Join(t.TempDir(), "x.png"))
	assert.ErrorIs(t, err, ErrNoSteps)
	assert.Zero(t, w.Steps())
}

func TestPlotWithoutScan(t *testing.T) {
	w := newWorld(t)
	w.SetScanning(false)
	require.NoError(t, w.Step(w.Center()))

	p, err := Plot(w)
	require.NoError(t, err)
	assert.Equal(t, "step 1, 0 hits", p.Title.Text)
}
