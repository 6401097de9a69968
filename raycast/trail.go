package raycast

import "gonum.org/v1/gonum/spatial/r2"

// DefaultTrailCapacity is the trail length used when a trail is created with a
// non-positive capacity.
const DefaultTrailCapacity = 200

// Trail is a fixed-capacity ring of positions. Once full, every Push drops the
// oldest point before the new one becomes visible.
type Trail struct {
	points []r2.Vec
	head   int // oldest retained point
	size   int
}

// NewTrail creates an empty trail holding at most capacity points.
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = DefaultTrailCapacity
	}
	return &Trail{points: make([]r2.Vec, capacity)}
}

// Cap returns the trail capacity.
func (t *Trail) Cap() int { return len(t.points) }

// Len returns the number of retained points.
func (t *Trail) Len() int { return t.size }

// Full reports whether the next Push will evict.
func (t *Trail) Full() bool { return t.size == len(t.points) }

// writePos is the slot the next Push writes to.
func (t *Trail) writePos() int {
	return (t.head + t.size) % len(t.points)
}

// Push appends p, evicting the oldest point when the trail is full.
func (t *Trail) Push(p r2.Vec) {
	t.points[t.writePos()] = p
	if t.size == len(t.points) {
		t.head = (t.head + 1) % len(t.points)
		return
	}
	t.size++
}

// At returns the i-th retained point, 0 being the oldest.
func (t *Trail) At(i int) (r2.Vec, bool) {
	if i < 0 || i >= t.size {
		return r2.Vec{}, false
	}
	return t.points[(t.head+i)%len(t.points)], true
}

// Newest returns the most recently pushed point.
func (t *Trail) Newest() (r2.Vec, bool) {
	return t.At(t.size - 1)
}

// Each calls fn for every retained point from oldest to newest.
func (t *Trail) Each(fn func(p r2.Vec)) {
	for i := 0; i < t.size; i++ {
		fn(t.points[(t.head+i)%len(t.points)])
	}
}

// PointsInto copies the retained points, oldest first, into dst.
func (t *Trail) PointsInto(dst []r2.Vec) []r2.Vec {
	dst = dst[:0]
	t.Each(func(p r2.Vec) { dst = append(dst, p) })
	return dst
}

// Points returns a copy of the retained points, oldest first.
func (t *Trail) Points() []r2.Vec {
	return t.PointsInto(make([]r2.Vec, 0, t.size))
}

// EachPair calls fn for consecutive retained points (a older than b). A slot
// is never joined to the write position, so the newest point is not linked
// back to stale data left in the ring.
func (t *Trail) EachPair(fn func(a, b r2.Vec)) {
	n := len(t.points)
	write := t.writePos()
	for i := 0; i < t.size; i++ {
		pos := (t.head + i) % n
		next := (pos + 1) % n
		if next == write {
			continue
		}
		fn(t.points[pos], t.points[next])
	}
}

// Reset drops every retained point.
func (t *Trail) Reset() {
	t.head = 0
	t.size = 0
}
