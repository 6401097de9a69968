package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gonum.org/v1/gonum/spatial/r2"

	"raycast2d/sim"
)

const (
	screenCols = 80
	screenRows = 25
)

func newTestApp(t *testing.T, opts Options) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(screenCols, screenRows)

	s := sim.DefaultSettings()
	s.Seed = 7
	s.Walls = 0
	world, err := sim.NewWorld(s)
	require.NoError(t, err)
	return NewApp(screen, world, zaptest.NewLogger(t), opts), screen
}

func runeAt(s tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func countRunes(s tcell.SimulationScreen, want rune) int {
	n := 0
	for y := 0; y < screenRows-1; y++ {
		for x := 0; x < screenCols; x++ {
			if runeAt(s, x, y) == want {
				n++
			}
		}
	}
	return n
}

func TestDrawManualAtCenter(t *testing.T) {
	app, screen := newTestApp(t, Options{Manual: true})
	require.NoError(t, app.Tick())

	assert.Equal(t, r2.Vec{X: 400, Y: 300}, app.world.Emitter().Position())
	assert.Equal(t, glyphEmitter, runeAt(screen, 40, 12))
	assert.Positive(t, countRunes(screen, glyphWall))
	assert.Positive(t, countRunes(screen, glyphHit))
	assert.Positive(t, countRunes(screen, glyphHitRay))
	assert.Equal(t, 1, countRunes(screen, glyphEmitter))
	assert.Equal(t, 'r', runeAt(screen, 1, screenRows-1))
}

func TestHideWallsSkipsScan(t *testing.T) {
	app, screen := newTestApp(t, Options{Manual: true, HideWalls: true})
	require.NoError(t, app.Tick())

	assert.False(t, app.world.Scanning())
	assert.Empty(t, app.world.Hits())
	assert.Zero(t, countRunes(screen, glyphWall))
	assert.Zero(t, countRunes(screen, glyphHit))
	assert.Equal(t, glyphEmitter, runeAt(screen, 40, 12))
}

func TestToggleWallsKey(t *testing.T) {
	app, _ := newTestApp(t, Options{Manual: true})
	require.True(t, app.world.Scanning())

	assert.True(t, app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)))
	assert.False(t, app.world.Scanning())
	assert.True(t, app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)))
	assert.True(t, app.world.Scanning())
}

func TestQuitKeys(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	assert.False(t, app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, app.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestMouseMovesEmitterInManualMode(t *testing.T) {
	app, _ := newTestApp(t, Options{Manual: true})
	assert.True(t, app.HandleEvent(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone)))
	require.NoError(t, app.Tick())
	assert.Equal(t, r2.Vec{X: 105, Y: 137.5}, app.world.Emitter().Position())
}

func TestMouseIgnoredInNoiseMode(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	app.HandleEvent(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, app.world.Center(), app.manual.Next())
}

func TestArrowKeysNudgeByCell(t *testing.T) {
	app, _ := newTestApp(t, Options{Manual: true})
	app.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	app.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	require.NoError(t, app.Tick())
	assert.Equal(t, r2.Vec{X: 410, Y: 275}, app.world.Emitter().Position())
}

func TestManualToggleKeepsPosition(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	for i := 0; i < 5; i++ {
		require.NoError(t, app.Tick())
	}
	pos := app.world.Emitter().Position()

	app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone))
	require.True(t, app.manualMode)
	require.NoError(t, app.Tick())
	assert.Equal(t, pos, app.world.Emitter().Position())
	assert.Equal(t, 6, app.world.Trail().Len())
}
