package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r2"

	"raycast2d/sim"
)

// Game drives a sim.World from Ebiten's update loop and draws it.
type Game struct {
	world *sim.World
	log   *zap.Logger

	noise  *sim.NoiseMotion
	manual *sim.FixedMotion

	manualMode bool
	showWalls  bool

	screenshotPending bool
	screenshotDir     string

	lastStepDuration time.Duration
}

// newGame wires the motion sources to a world.
func newGame(world *sim.World, log *zap.Logger) *Game {
	s := world.Settings()
	g := &Game{
		world:         world,
		log:           log,
		noise:         sim.NewNoiseMotion(float64(s.Width), float64(s.Height), s.NoiseStep, s.NoiseYOffset, s.NoiseSeed),
		manual:        sim.NewFixedMotion(world.Center()),
		manualMode:    *manualFlag,
		showWalls:     !*hideWallsFlag,
		screenshotDir: *screenshotDirFlag,
	}
	world.SetScanning(g.showWalls)
	return g
}

// Update handles input and advances the world one step.
func (g *Game) Update() error {
	g.handleKeys()

	var pos r2.Vec
	if g.manualMode {
		x, y := ebiten.CursorPosition()
		g.manual.Set(r2.Vec{X: float64(x), Y: float64(y)})
		pos = g.manual.Next()
	} else {
		pos = g.noise.Next()
	}

	start := time.Now()
	if err := g.world.Step(pos); err != nil {
		return err
	}
	g.lastStepDuration = time.Since(start)
	return nil
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) {
	s := g.world.Settings()
	return s.Width, s.Height
}

// toggleManual switches between the noise walk and the mouse.
func (g *Game) toggleManual() {
	g.manualMode = !g.manualMode
	g.log.Info("manual mode toggled", zap.Bool("manual", g.manualMode))
}

// toggleWalls hides or shows the walls; the scan follows the walls.
func (g *Game) toggleWalls() {
	g.showWalls = !g.showWalls
	g.world.SetScanning(g.showWalls)
}
