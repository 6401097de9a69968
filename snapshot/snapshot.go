// Package snapshot runs a world headless for a fixed number of steps and
// renders the final frame to an image file with gonum/plot.
package snapshot

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"raycast2d/sim"
)

// ErrNoSteps is returned when Run is asked for fewer than one step.
var ErrNoSteps = errors.New("snapshot needs at least one step")

const (
	imageWidth  = 8 * vg.Inch
	imageHeight = 6 * vg.Inch
)

var (
	wallColor   = color.NRGBA{A: 255}
	hitRayColor = color.NRGBA{R: 120, G: 120, B: 120, A: 77}
	trailColor  = color.NRGBA{R: 30, G: 110, B: 200, A: 128}
	hitColor    = color.NRGBA{R: 220, G: 160, A: 255}
	bodyColor   = color.NRGBA{R: 200, A: 255}
)

// Run advances world steps times along motion and saves the final frame to
// path. The format follows the extension (png, svg, pdf, ...).
func Run(world *sim.World, motion sim.Motion, steps int, path string) error {
	if steps < 1 {
		return ErrNoSteps
	}
	for i := 0; i < steps; i++ {
		if err := world.Step(motion.Next()); err != nil {
			return err
		}
	}
	p, err := Plot(world)
	if err != nil {
		return err
	}
	if err := p.Save(imageWidth, imageHeight, path); err != nil {
		return fmt.Errorf("saving snapshot %s: %w", path, err)
	}
	return nil
}

// Plot builds the current frame of world. Screen y grows downwards, so the
// plot flips it to keep the picture upright.
func Plot(world *sim.World) (*plot.Plot, error) {
	s := world.Settings()
	height := float64(s.Height)
	flip := func(v r2.Vec) plotter.XY { return plotter.XY{X: v.X, Y: height - v.Y} }

	p := plot.New()
	p.Title.Text = fmt.Sprintf("step %d, %d hits", world.Steps(), world.HitCount())
	p.X.Min, p.X.Max = 0, float64(s.Width)
	p.Y.Min, p.Y.Max = 0, height
	p.HideAxes()

	origin := world.Emitter().Position()
	var hits plotter.XYs
	for _, h := range world.Hits() {
		if !h.OK {
			continue
		}
		if err := addSegment(p, flip(origin), flip(h.Point), hitRayColor, vg.Points(0.5)); err != nil {
			return nil, err
		}
		hits = append(hits, flip(h.Point))
	}
	for _, w := range world.Walls() {
		if err := addSegment(p, flip(w.Begin), flip(w.End), wallColor, vg.Points(2)); err != nil {
			return nil, err
		}
	}

	trail := make(plotter.XYs, 0, world.Trail().Len())
	world.Trail().Each(func(v r2.Vec) { trail = append(trail, flip(v)) })
	if len(trail) > 1 {
		l, err := plotter.NewLine(trail)
		if err != nil {
			return nil, fmt.Errorf("trail: %w", err)
		}
		l.LineStyle.Color = trailColor
		l.LineStyle.Width = vg.Points(1)
		p.Add(l)
	}

	if len(hits) > 0 {
		sc, err := plotter.NewScatter(hits)
		if err != nil {
			return nil, fmt.Errorf("hits: %w", err)
		}
		sc.GlyphStyle.Color = hitColor
		sc.GlyphStyle.Radius = vg.Points(1)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
	}

	body, err := plotter.NewScatter(plotter.XYs{flip(origin)})
	if err != nil {
		return nil, fmt.Errorf("emitter: %w", err)
	}
	body.GlyphStyle.Color = bodyColor
	body.GlyphStyle.Radius = vg.Points(5)
	body.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(body)
	return p, nil
}

func addSegment(p *plot.Plot, a, b plotter.XY, c color.Color, width vg.Length) error {
	l, err := plotter.NewLine(plotter.XYs{a, b})
	if err != nil {
		return err
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = width
	p.Add(l)
	return nil
}
