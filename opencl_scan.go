//go:build opencl

package main

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"
	"gonum.org/v1/gonum/spatial/r2"

	"raycast2d/raycast"
)

// openCLScanner evaluates one ray per work item. It runs the same line
// intersection as the CPU path, in single precision.
type openCLScanner struct {
	context *cl.Context
	queue   *cl.CommandQueue
	program *cl.Program
	kernel  *cl.Kernel

	dirBuf  *cl.MemObject
	wallBuf *cl.MemObject
	hitBuf  *cl.MemObject

	rayCap  int
	wallCap int

	rays  []raycast.Ray
	dirs  []float32
	walls []float32
	hits  []float32

	deviceName string
}

const (
	floatsPerDir  = 2
	floatsPerWall = 4
	floatsPerHit  = 3
)

const scanKernelSource = `__kernel void scan_fan(
    const float ox,
    const float oy,
    __global const float* dirs,
    const int ray_count,
    __global const float* walls,
    const int wall_count,
    __global float* hits)
{
    int i = get_global_id(0);
    if (i >= ray_count) {
        return;
    }
    float x3 = ox;
    float y3 = oy;
    float x4 = ox + dirs[2 * i];
    float y4 = oy + dirs[2 * i + 1];
    float best = INFINITY;
    float bx = 0.0f;
    float by = 0.0f;
    int found = 0;
    for (int w = 0; w < wall_count; w++) {
        float x1 = walls[4 * w];
        float y1 = walls[4 * w + 1];
        float x2 = walls[4 * w + 2];
        float y2 = walls[4 * w + 3];
        float denom = (x1 - x2) * (y3 - y4) - (y1 - y2) * (x3 - x4);
        if (denom == 0.0f) {
            continue;
        }
        float t = ((x1 - x3) * (y3 - y4) - (y1 - y3) * (x3 - x4)) / denom;
        float u = -((x1 - x2) * (y1 - y3) - (y1 - y2) * (x1 - x3)) / denom;
        if (!(t > 0.0f && t < 1.0f && u > 0.0f)) {
            continue;
        }
        float px = x1 + t * (x2 - x1);
        float py = y1 + t * (y2 - y1);
        float d = hypot(px - ox, py - oy);
        if (d < best) {
            best = d;
            bx = px;
            by = py;
            found = 1;
        }
    }
    hits[3 * i] = bx;
    hits[3 * i + 1] = by;
    hits[3 * i + 2] = found ? best : -1.0f;
}`

func newOpenCLScanner(rays int) (*openCLScanner, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available")
	}
	device := pickDevice(platforms, cl.DeviceTypeGPU)
	if device == nil {
		device = pickDevice(platforms, cl.DeviceTypeCPU)
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	s := &openCLScanner{deviceName: device.Name()}
	if s.context, err = cl.CreateContext([]*cl.Device{device}); err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	if s.queue, err = s.context.CreateCommandQueue(device, 0); err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	if s.program, err = s.context.CreateProgramWithSource([]string{scanKernelSource}); err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := s.program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		s.Close()
		if buildErr, ok := err.(cl.BuildError); ok {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}
	if s.kernel, err = s.program.CreateKernel("scan_fan"); err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL kernel: %w", err)
	}
	if err := s.ensureRays(rays); err != nil {
		s.Close()
		return nil, err
	}
	if err := s.ensureWalls(1); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func pickDevice(platforms []*cl.Platform, kind cl.DeviceType) *cl.Device {
	for _, p := range platforms {
		devices, err := p.GetDevices(kind)
		if err != nil && err != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			return devices[0]
		}
	}
	return nil
}

func float32Bytes(n int) int { return n * int(unsafe.Sizeof(float32(0))) }

// ensureRays sizes the direction and hit buffers for n rays.
func (s *openCLScanner) ensureRays(n int) error {
	if n <= s.rayCap {
		return nil
	}
	if s.dirBuf != nil {
		s.dirBuf.Release()
		s.dirBuf = nil
	}
	if s.hitBuf != nil {
		s.hitBuf.Release()
		s.hitBuf = nil
	}
	var err error
	if s.dirBuf, err = s.context.CreateEmptyBuffer(cl.MemReadOnly, float32Bytes(n*floatsPerDir)); err != nil {
		return fmt.Errorf("allocating direction buffer: %w", err)
	}
	if s.hitBuf, err = s.context.CreateEmptyBuffer(cl.MemWriteOnly, float32Bytes(n*floatsPerHit)); err != nil {
		return fmt.Errorf("allocating hit buffer: %w", err)
	}
	s.rayCap = n
	return nil
}

// ensureWalls grows the wall buffer to hold at least n walls.
func (s *openCLScanner) ensureWalls(n int) error {
	if n < 1 {
		n = 1
	}
	if n <= s.wallCap {
		return nil
	}
	if s.wallBuf != nil {
		s.wallBuf.Release()
		s.wallBuf = nil
	}
	var err error
	if s.wallBuf, err = s.context.CreateEmptyBuffer(cl.MemReadOnly, float32Bytes(n*floatsPerWall)); err != nil {
		return fmt.Errorf("allocating wall buffer: %w", err)
	}
	s.wallCap = n
	return nil
}

// Scan implements sim.Scanner.
func (s *openCLScanner) Scan(dst []raycast.Hit, e *raycast.Emitter, obstacles []raycast.Segment) ([]raycast.Hit, error) {
	n := e.Len()
	if err := s.ensureRays(n); err != nil {
		return nil, err
	}
	if err := s.ensureWalls(len(obstacles)); err != nil {
		return nil, err
	}

	s.rays = e.Rays(s.rays)
	s.dirs = s.dirs[:0]
	for _, r := range s.rays {
		s.dirs = append(s.dirs, float32(r.Dir.X), float32(r.Dir.Y))
	}
	s.walls = s.walls[:0]
	for _, w := range obstacles {
		s.walls = append(s.walls, float32(w.Begin.X), float32(w.Begin.Y), float32(w.End.X), float32(w.End.Y))
	}
	if cap(s.hits) < n*floatsPerHit {
		s.hits = make([]float32, n*floatsPerHit)
	}
	s.hits = s.hits[:n*floatsPerHit]

	if _, err := s.queue.EnqueueWriteBufferFloat32(s.dirBuf, false, 0, s.dirs, nil); err != nil {
		return nil, fmt.Errorf("writing direction buffer: %w", err)
	}
	if len(s.walls) > 0 {
		if _, err := s.queue.EnqueueWriteBufferFloat32(s.wallBuf, false, 0, s.walls, nil); err != nil {
			return nil, fmt.Errorf("writing wall buffer: %w", err)
		}
	}
	pos := e.Position()
	if err := s.kernel.SetArgs(
		float32(pos.X),
		float32(pos.Y),
		s.dirBuf,
		int32(n),
		s.wallBuf,
		int32(len(obstacles)),
		s.hitBuf,
	); err != nil {
		return nil, fmt.Errorf("setting kernel arguments: %w", err)
	}
	if _, err := s.queue.EnqueueNDRangeKernel(s.kernel, nil, []int{n}, nil, nil); err != nil {
		return nil, fmt.Errorf("enqueueing kernel: %w", err)
	}
	if _, err := s.queue.EnqueueReadBufferFloat32(s.hitBuf, true, 0, s.hits, nil); err != nil {
		return nil, fmt.Errorf("reading hit buffer: %w", err)
	}

	if cap(dst) < n {
		dst = make([]raycast.Hit, n)
	}
	dst = dst[:n]
	for i := range dst {
		base := i * floatsPerHit
		d := s.hits[base+2]
		if d < 0 || math.IsInf(float64(d), 0) {
			dst[i] = raycast.Hit{Ray: i}
			continue
		}
		dst[i] = raycast.Hit{
			Ray:      i,
			Point:    r2.Vec{X: float64(s.hits[base]), Y: float64(s.hits[base+1])},
			Distance: float64(d),
			OK:       true,
		}
	}
	return dst, nil
}

// Name implements sim.Scanner.
func (s *openCLScanner) Name() string { return "opencl" }

// DeviceName returns the name of the device running the kernel.
func (s *openCLScanner) DeviceName() string { return s.deviceName }

// Close releases every OpenCL object held by the scanner.
func (s *openCLScanner) Close() {
	for _, buf := range []**cl.MemObject{&s.hitBuf, &s.wallBuf, &s.dirBuf} {
		if *buf != nil {
			(*buf).Release()
			*buf = nil
		}
	}
	if s.kernel != nil {
		s.kernel.Release()
		s.kernel = nil
	}
	if s.program != nil {
		s.program.Release()
		s.program = nil
	}
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.context != nil {
		s.context.Release()
		s.context = nil
	}
}
