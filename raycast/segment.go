package raycast

import "gonum.org/v1/gonum/spatial/r2"

// Segment is a directed obstacle edge from Begin to End.
type Segment struct {
	Begin r2.Vec
	End   r2.Vec
}

// NewSegment builds a segment from two endpoint coordinates. Zero-length
// segments are accepted; they never produce an intersection.
func NewSegment(x1, y1, x2, y2 float64) Segment {
	return Segment{
		Begin: r2.Vec{X: x1, Y: y1},
		End:   r2.Vec{X: x2, Y: y2},
	}
}

// Len returns the Euclidean length of the segment.
func (s Segment) Len() float64 {
	return r2.Norm(r2.Sub(s.End, s.Begin))
}
