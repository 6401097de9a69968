package sim

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r2"

	"raycast2d/raycast"
)

// World ties one emitter, its trail and the current obstacle list together
// and advances them one step at a time. It is not safe for concurrent use.
type World struct {
	settings Settings
	log      *zap.Logger

	emitter *raycast.Emitter
	trail   *raycast.Trail
	scanner Scanner

	// walls holds the random walls first, then the four borders.
	walls     []raycast.Segment
	levelRand *rand.Rand

	hits     []raycast.Hit
	scanning bool
	steps    uint64
}

// Option customizes a World.
type Option func(*World)

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// WithScanner replaces the scanner chosen from the settings.
func WithScanner(s Scanner) Option {
	return func(w *World) {
		if s != nil {
			w.scanner = s
		}
	}
}

// WithRand sets the wall placement source.
func WithRand(r *rand.Rand) Option {
	return func(w *World) {
		if r != nil {
			w.levelRand = r
		}
	}
}

// NewWorld builds a world with the emitter in the middle of the window.
func NewWorld(s Settings, opts ...Option) (*World, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	center := r2.Vec{X: float64(s.Width / 2), Y: float64(s.Height / 2)}
	w := &World{
		settings: s,
		log:      zap.NewNop(),
		emitter:  raycast.NewEmitter(center, s.Rays),
		trail:    raycast.NewTrail(s.TrailCapacity),
		scanner:  ScannerFor(s),
		hits:     make([]raycast.Hit, 0, s.Rays),
		scanning: true,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.levelRand == nil {
		seed := s.Seed
		if seed == 0 {
			seed = time.Now().UnixNano() + 1
		}
		w.levelRand = rand.New(rand.NewSource(seed))
	}
	w.walls = make([]raycast.Segment, 0, s.Walls+4)
	w.RegenerateWalls()
	w.log.Debug("world created",
		zap.Int("rays", s.Rays),
		zap.Int("trail_capacity", s.TrailCapacity),
		zap.Int("walls", s.Walls),
		zap.String("scanner", w.scanner.Name()))
	return w, nil
}

// Step moves the emitter to pos, rebuilds its fan, scans the current walls
// when scanning is on and records pos in the trail.
func (w *World) Step(pos r2.Vec) error {
	w.emitter.SetPosition(pos)
	if w.scanning {
		hits, err := w.scanner.Scan(w.hits, w.emitter, w.walls)
		if err != nil {
			return fmt.Errorf("step %d: %s scan: %w", w.steps, w.scanner.Name(), err)
		}
		w.hits = hits
	} else {
		w.hits = w.hits[:0]
	}
	w.trail.Push(pos)
	w.steps++
	return nil
}

// RegenerateWalls replaces the random walls and keeps the borders.
func (w *World) RegenerateWalls() {
	width, height := w.settings.Width, w.settings.Height
	w.walls = appendRandomWalls(w.walls[:0], w.levelRand, w.settings.Walls, width, height)
	w.walls = append(w.walls, BorderWalls(float64(width), float64(height))...)
	w.log.Debug("walls regenerated", zap.Int("count", len(w.walls)))
}

// SetScanning turns the scan on or off. While off, Hits is empty.
func (w *World) SetScanning(on bool) {
	if on == w.scanning {
		return
	}
	w.scanning = on
	if !on {
		w.hits = w.hits[:0]
	}
	w.log.Info("scanning toggled", zap.Bool("on", on))
}

// Scanning reports whether Step scans.
func (w *World) Scanning() bool { return w.scanning }

// SetScanner swaps the scanner, e.g. after a GPU device fails.
func (w *World) SetScanner(s Scanner) {
	if s == nil {
		return
	}
	w.log.Info("scanner selected", zap.String("scanner", s.Name()))
	w.scanner = s
}

// Scanner returns the active scanner.
func (w *World) Scanner() Scanner { return w.scanner }

// Walls returns the obstacle list. Callers must not modify it.
func (w *World) Walls() []raycast.Segment { return w.walls }

// Hits returns the latest scan result, one entry per ray, or nothing when
// scanning is off. The slice is reused by the next Step.
func (w *World) Hits() []raycast.Hit { return w.hits }

// Emitter returns the emitter.
func (w *World) Emitter() *raycast.Emitter { return w.emitter }

// Trail returns the trail of past emitter positions.
func (w *World) Trail() *raycast.Trail { return w.trail }

// Settings returns the settings the world was built with.
func (w *World) Settings() Settings { return w.settings }

// Steps returns the number of completed steps.
func (w *World) Steps() uint64 { return w.steps }

// Center returns the middle of the window.
func (w *World) Center() r2.Vec {
	return r2.Vec{X: float64(w.settings.Width / 2), Y: float64(w.settings.Height / 2)}
}

// HitCount returns how many rays of the latest scan found an obstacle.
func (w *World) HitCount() int {
	n := 0
	for _, h := range w.hits {
		if h.OK {
			n++
		}
	}
	return n
}
