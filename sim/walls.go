package sim

import (
	"math/rand"

	"raycast2d/raycast"
)

// BorderWalls returns the four walls enclosing a width x height window,
// clockwise from the top edge.
func BorderWalls(width, height float64) []raycast.Segment {
	return []raycast.Segment{
		raycast.NewSegment(0, 0, width, 0),
		raycast.NewSegment(width, 0, width, height),
		raycast.NewSegment(width, height, 0, height),
		raycast.NewSegment(0, height, 0, 0),
	}
}

// RandomWalls places count walls with integer endpoints drawn uniformly from
// [0,width] x [0,height]. Endpoints may coincide; such walls are degenerate and
// never block a ray.
func RandomWalls(rng *rand.Rand, count, width, height int) []raycast.Segment {
	return appendRandomWalls(make([]raycast.Segment, 0, count), rng, count, width, height)
}

func appendRandomWalls(dst []raycast.Segment, rng *rand.Rand, count, width, height int) []raycast.Segment {
	for i := 0; i < count; i++ {
		x1 := float64(rng.Intn(width + 1))
		y1 := float64(rng.Intn(height + 1))
		x2 := float64(rng.Intn(width + 1))
		y2 := float64(rng.Intn(height + 1))
		dst = append(dst, raycast.NewSegment(x1, y1, x2, y2))
	}
	return dst
}
