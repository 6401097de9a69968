// Package tui renders a sim.World into a terminal with tcell.
package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r2"

	"raycast2d/sim"
)

// Glyphs, in drawing order: later layers overwrite earlier ones.
const (
	glyphHitRay  = '.'
	glyphWall    = '#'
	glyphTrail   = 'o'
	glyphHit     = '*'
	glyphEmitter = '@'
)

var (
	styleHitRay  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleTrail   = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleHit     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleEmitter = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatus  = tcell.StyleDefault.Reverse(true)
)

// Options selects the initial modes.
type Options struct {
	Manual    bool
	HideWalls bool
}

// App is the terminal frontend state.
type App struct {
	screen tcell.Screen
	world  *sim.World
	log    *zap.Logger

	noise  *sim.NoiseMotion
	manual *sim.FixedMotion

	manualMode bool
	showWalls  bool
}

// Run opens the terminal, drives world at its configured TPS and returns when
// the user quits.
func Run(world *sim.World, log *zap.Logger, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	app := NewApp(screen, world, log, opts)
	return app.loop(time.Second / time.Duration(world.Settings().TPS))
}

// NewApp builds the frontend on an initialized screen.
func NewApp(screen tcell.Screen, world *sim.World, log *zap.Logger, opts Options) *App {
	if log == nil {
		log = zap.NewNop()
	}
	s := world.Settings()
	a := &App{
		screen:     screen,
		world:      world,
		log:        log,
		noise:      sim.NewNoiseMotion(float64(s.Width), float64(s.Height), s.NoiseStep, s.NoiseYOffset, s.NoiseSeed),
		manual:     sim.NewFixedMotion(world.Center()),
		manualMode: opts.Manual,
		showWalls:  !opts.HideWalls,
	}
	world.SetScanning(a.showWalls)
	return a
}

func (a *App) loop(tick time.Duration) error {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if err := a.Tick(); err != nil {
				return err
			}
		}
	}
}

// Tick advances the world one step and redraws.
func (a *App) Tick() error {
	pos := a.noise.Next()
	if a.manualMode {
		pos = a.manual.Next()
	}
	if err := a.world.Step(pos); err != nil {
		return err
	}
	a.Draw()
	return nil
}

// HandleEvent applies one terminal event and reports whether to keep running.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		if a.manualMode {
			x, y := ev.Position()
			a.manual.Set(a.view().toWorld(cell{x: x, y: y}))
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	s := a.world.Settings()
	step := a.view().cellSize()
	w, h := float64(s.Width), float64(s.Height)
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.manual.Nudge(r2.Vec{Y: -step.Y}, w, h)
	case tcell.KeyDown:
		a.manual.Nudge(r2.Vec{Y: step.Y}, w, h)
	case tcell.KeyLeft:
		a.manual.Nudge(r2.Vec{X: -step.X}, w, h)
	case tcell.KeyRight:
		a.manual.Nudge(r2.Vec{X: step.X}, w, h)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'r':
			a.world.RegenerateWalls()
		case 'm':
			a.manualMode = !a.manualMode
			if a.manualMode {
				a.manual.Set(a.world.Emitter().Position())
			}
			a.log.Info("manual mode toggled", zap.Bool("manual", a.manualMode))
		case 'w':
			a.showWalls = !a.showWalls
			a.world.SetScanning(a.showWalls)
		}
	}
	return true
}

func (a *App) view() viewport {
	s := a.world.Settings()
	cols, rows := a.screen.Size()
	if rows > 1 {
		rows-- // status line
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return viewport{worldW: float64(s.Width), worldH: float64(s.Height), cols: cols, rows: rows}
}

// Draw renders the current world state.
func (a *App) Draw() {
	a.screen.Clear()
	v := a.view()
	set := func(r rune, st tcell.Style) func(c cell) {
		return func(c cell) { a.screen.SetContent(c.x, c.y, r, nil, st) }
	}

	e := a.world.Emitter()
	origin := v.toCell(e.Position())
	if a.showWalls {
		for _, h := range a.world.Hits() {
			if h.OK {
				plotLine(origin, v.toCell(h.Point), set(glyphHitRay, styleHitRay))
			}
		}
		for _, w := range a.world.Walls() {
			plotLine(v.toCell(w.Begin), v.toCell(w.End), set(glyphWall, styleWall))
		}
	}
	a.world.Trail().EachPair(func(p, q r2.Vec) {
		plotLine(v.toCell(p), v.toCell(q), set(glyphTrail, styleTrail))
	})
	if a.showWalls {
		for _, h := range a.world.Hits() {
			if h.OK {
				set(glyphHit, styleHit)(v.toCell(h.Point))
			}
		}
	}
	set(glyphEmitter, styleEmitter)(origin)

	a.drawStatus(v.rows)
	a.screen.Show()
}

func (a *App) drawStatus(row int) {
	mode := "noise"
	if a.manualMode {
		mode = "manual"
	}
	status := []rune(" r:walls  m:" + mode + "  w:toggle  q:quit ")
	for i, r := range status {
		a.screen.SetContent(i, row, r, nil, styleStatus)
	}
}
