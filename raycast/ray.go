package raycast

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Ray is a semi-infinite line starting at Origin and heading along Dir.
// The origin itself never counts as an intersection.
type Ray struct {
	Origin r2.Vec
	Dir    r2.Vec
}

// RayFromAngle returns a ray at origin whose unit direction points along
// angleDeg degrees, measured from +X towards +Y.
func RayFromAngle(origin r2.Vec, angleDeg float64) Ray {
	rad := angleDeg * math.Pi / 180.0
	return Ray{
		Origin: origin,
		Dir:    r2.Vec{X: math.Cos(rad), Y: math.Sin(rad)},
	}
}

// RayAimedAt returns a ray at origin pointing towards target.
//
// target must differ from origin: the direction of a zero-length aim vector is
// undefined and such a ray intersects nothing.
func RayAimedAt(origin, target r2.Vec) Ray {
	return Ray{Origin: origin, Dir: r2.Unit(r2.Sub(target, origin))}
}

// AimAt returns a copy of r re-aimed at target, keeping its origin.
func (r Ray) AimAt(target r2.Vec) Ray {
	return RayAimedAt(r.Origin, target)
}

// PointAt returns the point at parameter u along the ray.
func (r Ray) PointAt(u float64) r2.Vec {
	return r2.Add(r.Origin, r2.Scale(u, r.Dir))
}

// Angle returns the direction of the ray in degrees within [0, 360).
func (r Ray) Angle() float64 {
	deg := math.Atan2(r.Dir.Y, r.Dir.X) * 180.0 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}
