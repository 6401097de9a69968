package tui

import "gonum.org/v1/gonum/spatial/r2"

// cell is an integer coordinate on the terminal grid.
type cell struct {
	x int
	y int
}

// viewport maps world coordinates onto a cols x rows terminal grid.
type viewport struct {
	worldW, worldH float64
	cols, rows     int
}

// toCell returns the cell covering p, clamped to the grid.
func (v viewport) toCell(p r2.Vec) cell {
	x := int(p.X / v.worldW * float64(v.cols))
	y := int(p.Y / v.worldH * float64(v.rows))
	return cell{x: clampCoord(x, 0, v.cols-1), y: clampCoord(y, 0, v.rows-1)}
}

// toWorld returns the world point at the center of cell c.
func (v viewport) toWorld(c cell) r2.Vec {
	return r2.Vec{
		X: (float64(c.x) + 0.5) / float64(v.cols) * v.worldW,
		Y: (float64(c.y) + 0.5) / float64(v.rows) * v.worldH,
	}
}

// cellSize returns the world extent of one cell.
func (v viewport) cellSize() r2.Vec {
	return r2.Vec{X: v.worldW / float64(v.cols), Y: v.worldH / float64(v.rows)}
}

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// plotLine visits every cell on the line from a to b using Bresenham's
// integer algorithm, endpoints included.
func plotLine(a, b cell, plot func(c cell)) {
	x0, y0, x1, y1 := a.x, a.y, b.x, b.y
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(cell{x: x0, y: y0})
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
