package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
)

var testView = viewport{worldW: 800, worldH: 600, cols: 80, rows: 24}

func TestViewportToCell(t *testing.T) {
	assert.Equal(t, cell{x: 40, y: 12}, testView.toCell(r2.Vec{X: 400, Y: 300}))
	assert.Equal(t, cell{x: 0, y: 0}, testView.toCell(r2.Vec{}))
	assert.Equal(t, cell{x: 79, y: 23}, testView.toCell(r2.Vec{X: 800, Y: 600}))
	assert.Equal(t, cell{x: 0, y: 23}, testView.toCell(r2.Vec{X: -50, Y: 9000}))
}

func TestViewportRoundTrip(t *testing.T) {
	for _, c := range []cell{{0, 0}, {79, 23}, {13, 7}} {
		assert.Equal(t, c, testView.toCell(testView.toWorld(c)))
	}
	assert.Equal(t, r2.Vec{X: 10, Y: 25}, testView.cellSize())
}

func collect(a, b cell) []cell {
	var got []cell
	plotLine(a, b, func(c cell) { got = append(got, c) })
	return got
}

func TestPlotLine(t *testing.T) {
	assert.Equal(t, []cell{{3, 3}}, collect(cell{3, 3}, cell{3, 3}))
	assert.Equal(t, []cell{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, collect(cell{0, 0}, cell{3, 0}))
	assert.Equal(t, []cell{{2, 2}, {1, 1}, {0, 0}}, collect(cell{2, 2}, cell{0, 0}))

	steep := collect(cell{0, 0}, cell{1, 5})
	assert.Len(t, steep, 6)
	assert.Equal(t, cell{0, 0}, steep[0])
	assert.Equal(t, cell{1, 5}, steep[len(steep)-1])
}
