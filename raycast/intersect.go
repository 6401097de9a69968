package raycast

import "gonum.org/v1/gonum/spatial/r2"

// Intersection carries the solved line parameters alongside the point: T runs
// along the segment (0 at Begin, 1 at End) and U along the ray in units of its
// direction vector.
type Intersection struct {
	Point r2.Vec
	T     float64
	U     float64
}

// Intersect reports where r crosses s.
//
// Parallel or coincident lines, crossings outside the open segment (t at or
// beyond either endpoint) and crossings at or behind the ray origin all report
// false. The point is taken from the segment's own parametrization.
func Intersect(s Segment, r Ray) (r2.Vec, bool) {
	in, ok := Solve(s, r)
	return in.Point, ok
}

// Solve is Intersect with the line parameters exposed.
func Solve(s Segment, r Ray) (Intersection, bool) {
	x1, y1 := s.Begin.X, s.Begin.Y
	x2, y2 := s.End.X, s.End.Y

	x3, y3 := r.Origin.X, r.Origin.Y
	x4 := r.Origin.X + r.Dir.X
	y4 := r.Origin.Y + r.Dir.Y

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		return Intersection{}, false
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom
	u := -((x1-x2)*(y1-y3) - (y1-y2)*(x1-x3)) / denom

	if !(t > 0 && t < 1 && u > 0) {
		return Intersection{T: t, U: u}, false
	}
	return Intersection{
		Point: r2.Vec{X: x1 + t*(x2-x1), Y: y1 + t*(y2-y1)},
		T:     t,
		U:     u,
	}, true
}
