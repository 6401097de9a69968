package sim

import "raycast2d/raycast"

// Scanner evaluates an emitter fan against obstacles, writing into dst.
type Scanner interface {
	Scan(dst []raycast.Hit, e *raycast.Emitter, obstacles []raycast.Segment) ([]raycast.Hit, error)
	Name() string
}

// SerialScanner scans every ray on the calling goroutine.
type SerialScanner struct{}

// Scan implements Scanner.
func (SerialScanner) Scan(dst []raycast.Hit, e *raycast.Emitter, obstacles []raycast.Segment) ([]raycast.Hit, error) {
	return e.ScanInto(dst, obstacles), nil
}

// Name implements Scanner.
func (SerialScanner) Name() string { return "serial" }

// ParallelScanner splits the fan across Workers goroutines.
type ParallelScanner struct {
	Workers int
}

// Scan implements Scanner.
func (s ParallelScanner) Scan(dst []raycast.Hit, e *raycast.Emitter, obstacles []raycast.Segment) ([]raycast.Hit, error) {
	return e.ScanParallel(dst, obstacles, s.Workers), nil
}

// Name implements Scanner.
func (s ParallelScanner) Name() string { return "parallel" }

// ScannerFor picks the CPU scanner matching the settings.
func ScannerFor(s Settings) Scanner {
	if s.Workers > 0 {
		return ParallelScanner{Workers: s.Workers}
	}
	return SerialScanner{}
}
