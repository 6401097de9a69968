package sim

import (
	"github.com/aquilax/go-perlin"
	"gonum.org/v1/gonum/spatial/r2"
)

// Motion yields the emitter position for the next step.
type Motion interface {
	Next() r2.Vec
}

// Perlin parameters: alpha is the per-octave weight divisor, beta the
// frequency multiplier, octaves the number of summed layers.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// NoiseMotion wanders across the window following smooth Perlin noise, one
// noise channel per axis.
type NoiseMotion struct {
	noise  *perlin.Perlin
	width  float64
	height float64
	xOff   float64
	yOff   float64
	step   float64
}

// NewNoiseMotion builds a noise walk over a width x height window.
func NewNoiseMotion(width, height float64, step, yOffset float64, seed int64) *NoiseMotion {
	return &NoiseMotion{
		noise:  perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed),
		width:  width,
		height: height,
		yOff:   yOffset,
		step:   step,
	}
}

// Next samples the noise at the current offsets, then advances them.
func (m *NoiseMotion) Next() r2.Vec {
	p := r2.Vec{
		X: unitNoise(m.noise.Noise2D(m.xOff, 0)) * m.width,
		Y: unitNoise(m.noise.Noise2D(0, m.yOff)) * m.height,
	}
	m.xOff += m.step
	m.yOff += m.step
	return p
}

// unitNoise maps noise in roughly [-1,1] onto [0,1].
func unitNoise(v float64) float64 {
	v = v*0.5 + 0.5
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// FixedMotion returns whatever position was last set, for manual control.
type FixedMotion struct {
	pos r2.Vec
}

// NewFixedMotion starts a manual motion at pos.
func NewFixedMotion(pos r2.Vec) *FixedMotion {
	return &FixedMotion{pos: pos}
}

// Set moves the manual target.
func (m *FixedMotion) Set(pos r2.Vec) { m.pos = pos }

// Nudge moves the manual target by d, keeping it inside [0,w] x [0,h].
func (m *FixedMotion) Nudge(d r2.Vec, w, h float64) {
	m.pos = clampToWindow(r2.Add(m.pos, d), w, h)
}

// Next returns the current manual target.
func (m *FixedMotion) Next() r2.Vec { return m.pos }

func clampToWindow(p r2.Vec, w, h float64) r2.Vec {
	return r2.Vec{X: clampFloat(p.X, 0, w), Y: clampFloat(p.Y, 0, h)}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
