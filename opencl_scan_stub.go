//go:build !opencl

package main

import (
	"errors"

	"raycast2d/raycast"
)

type openCLScanner struct{}

func newOpenCLScanner(_ int) (*openCLScanner, error) {
	return nil, errors.New("OpenCL support is not enabled; rebuild with -tags opencl")
}

func (s *openCLScanner) Scan(_ []raycast.Hit, _ *raycast.Emitter, _ []raycast.Segment) ([]raycast.Hit, error) {
	return nil, errors.New("OpenCL scanner unavailable")
}

func (s *openCLScanner) Name() string { return "opencl" }

func (s *openCLScanner) Close() {}

func (s *openCLScanner) DeviceName() string { return "" }
