package raycast

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultRayCount is the fan size used when an emitter is created with a
// non-positive ray count.
const DefaultRayCount = 360

// Hit is the scan result for one ray of the fan. OK is false when no obstacle
// was intersected; Point and Distance are meaningless in that case.
type Hit struct {
	Ray      int
	Point    r2.Vec
	Distance float64
	OK       bool
}

// Emitter owns a fan of rays anchored at a single position. Ray i always
// points at 360/N*i degrees.
type Emitter struct {
	pos  r2.Vec
	rays []Ray
}

// NewEmitter creates an emitter at pos with n evenly spaced rays.
func NewEmitter(pos r2.Vec, n int) *Emitter {
	if n < 1 {
		n = DefaultRayCount
	}
	e := &Emitter{rays: make([]Ray, n)}
	e.SetPosition(pos)
	return e
}

// SetPosition moves the emitter and rebuilds every ray of the fan from its
// index-derived angle.
func (e *Emitter) SetPosition(pos r2.Vec) {
	e.pos = pos
	slice := 360.0 / float64(len(e.rays))
	for i := range e.rays {
		e.rays[i] = RayFromAngle(pos, slice*float64(i))
	}
}

// Position returns the emitter position.
func (e *Emitter) Position() r2.Vec { return e.pos }

// Len returns the number of rays in the fan.
func (e *Emitter) Len() int { return len(e.rays) }

// Ray returns ray i of the fan.
func (e *Emitter) Ray(i int) (Ray, bool) {
	if i < 0 || i >= len(e.rays) {
		return Ray{}, false
	}
	return e.rays[i], true
}

// Rays copies the fan into dst, reusing its storage.
func (e *Emitter) Rays(dst []Ray) []Ray {
	return append(dst[:0], e.rays...)
}

// Scan returns the nearest hit of every ray against obstacles.
func (e *Emitter) Scan(obstacles []Segment) []Hit {
	return e.ScanInto(make([]Hit, 0, len(e.rays)), obstacles)
}

// ScanInto is Scan writing into dst, which is resized to the fan length.
func (e *Emitter) ScanInto(dst []Hit, obstacles []Segment) []Hit {
	dst = resizeHits(dst, len(e.rays))
	e.scanRange(dst, obstacles, 0, len(e.rays))
	return dst
}

// scanRange fills dst[lo:hi]. Distinct ranges touch distinct elements only.
func (e *Emitter) scanRange(dst []Hit, obstacles []Segment, lo, hi int) {
	for i := lo; i < hi; i++ {
		dst[i] = nearestHit(e.pos, i, e.rays[i], obstacles)
	}
}

// nearestHit reduces one ray over all obstacles. Equal distances keep the
// obstacle seen first.
func nearestHit(pos r2.Vec, index int, ray Ray, obstacles []Segment) Hit {
	best := Hit{Ray: index, Distance: math.Inf(1)}
	for _, wall := range obstacles {
		p, ok := Intersect(wall, ray)
		if !ok {
			continue
		}
		d := r2.Norm(r2.Sub(p, pos))
		if d < best.Distance {
			best.Point = p
			best.Distance = d
			best.OK = true
		}
	}
	if !best.OK {
		best.Distance = 0
	}
	return best
}

func resizeHits(dst []Hit, n int) []Hit {
	if cap(dst) < n {
		return make([]Hit, n)
	}
	return dst[:n]
}
