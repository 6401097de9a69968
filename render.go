package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gonum.org/v1/gonum/spatial/r2"
)

// Draw renders walls, hit lines, the emitter with its ray stubs and the trail.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	if g.showWalls {
		for _, w := range g.world.Walls() {
			strokeLine(screen, w.Begin, w.End, wallWidth, wallColor)
		}
		pos := g.world.Emitter().Position()
		for _, h := range g.world.Hits() {
			if !h.OK {
				continue
			}
			strokeLine(screen, pos, h.Point, hitLineWidth, hitLineColor)
		}
	}

	g.drawEmitter(screen)

	g.world.Trail().EachPair(func(a, b r2.Vec) {
		strokeLine(screen, a, b, trailWidth, trailColor)
	})

	if *debugFlag {
		ebitenutil.DebugPrint(screen, g.debugText())
	}

	if g.screenshotPending {
		g.screenshotPending = false
		g.saveScreenshot(screen)
	}
}

// drawEmitter draws the emitter disc and a short stub along every ray.
func (g *Game) drawEmitter(screen *ebiten.Image) {
	e := g.world.Emitter()
	pos := e.Position()
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), emitterRadius, emitterColor, true)
	for i := 0; i < e.Len(); i++ {
		ray, _ := e.Ray(i)
		strokeLine(screen, ray.Origin, ray.PointAt(rayStubLength), rayStubWidth, rayStubColor)
	}
}

func (g *Game) debugText() string {
	mode := "noise"
	if g.manualMode {
		mode = "manual"
	}
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nStep: %.3f ms (%s)\nHits: %d/%d\nWalls: %d\nMode: %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		g.lastStepDuration.Seconds()*1000, g.world.Scanner().Name(),
		g.world.HitCount(), g.world.Emitter().Len(),
		len(g.world.Walls()), mode)
}

func strokeLine(dst *ebiten.Image, a, b r2.Vec, width float32, clr color.Color) {
	vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
}
