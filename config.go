package main

import (
	"image/color"

	"raycast2d/sim"
)

// Window and drawing constants.
const (
	windowTitle = "Raycasting"

	wallWidth     = 2
	hitLineWidth  = 1
	trailWidth    = 1
	rayStubWidth  = 1
	rayStubLength = 10
	emitterRadius = 5
)

var (
	backgroundColor = color.Black
	wallColor       = color.White
	emitterColor    = color.White
	hitLineColor    = fade(color.White, 0.30)
	rayStubColor    = fade(color.White, 0.078)
	trailColor      = fade(color.White, 0.5)
)

// fade returns c with its alpha scaled by alpha, like raylib's Fade.
func fade(c color.Gray16, alpha float64) color.NRGBA {
	v := uint8(c.Y >> 8)
	return color.NRGBA{R: v, G: v, B: v, A: uint8(alpha * 255)}
}

// resolveSettings layers the settings file and then explicit flags over the
// built-in defaults.
func resolveSettings() (sim.Settings, error) {
	s := sim.DefaultSettings()
	if *configFlag != "" {
		loaded, err := sim.LoadSettings(*configFlag)
		if err != nil {
			return sim.Settings{}, err
		}
		s = loaded
	}
	if *raysFlag > 0 {
		s.Rays = *raysFlag
	}
	if *trailFlag > 0 {
		s.TrailCapacity = *trailFlag
	}
	if *wallsFlag >= 0 {
		s.Walls = *wallsFlag
	}
	if *seedFlag != 0 {
		s.Seed = *seedFlag
	}
	if *workersFlag >= 0 {
		s.Workers = *workersFlag
	}
	return s, s.Validate()
}
