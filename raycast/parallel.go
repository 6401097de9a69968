package raycast

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minRaysPerChunk keeps chunks large enough that goroutine overhead does not
// dominate small fans.
const minRaysPerChunk = 32

// rayChunk is a half-open range of fan indices.
type rayChunk struct{ lo, hi int }

// splitRays cuts n rays into contiguous chunks of roughly equal size.
func splitRays(n, workers int) []rayChunk {
	if workers < 1 {
		workers = 1
	}
	count := workers * 2
	if maxChunks := (n + minRaysPerChunk - 1) / minRaysPerChunk; count > maxChunks {
		count = maxChunks
	}
	if count < 1 {
		count = 1
	}
	per := (n + count - 1) / count
	chunks := make([]rayChunk, 0, count)
	for lo := 0; lo < n; lo += per {
		hi := lo + per
		if hi > n {
			hi = n
		}
		chunks = append(chunks, rayChunk{lo: lo, hi: hi})
	}
	return chunks
}

// ScanParallel produces the same result as ScanInto while evaluating chunks of
// the fan on up to workers goroutines. workers < 1 uses GOMAXPROCS.
//
// obstacles is shared read-only between goroutines and must not be modified
// until ScanParallel returns.
func (e *Emitter) ScanParallel(dst []Hit, obstacles []Segment, workers int) []Hit {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	dst = resizeHits(dst, len(e.rays))
	if workers == 1 {
		e.scanRange(dst, obstacles, 0, len(e.rays))
		return dst
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for _, c := range splitRays(len(e.rays), workers) {
		g.Go(func() error {
			e.scanRange(dst, obstacles, c.lo, c.hi)
			return nil
		})
	}
	_ = g.Wait()
	return dst
}
