package sim

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"raycast2d/raycast"
)

// Defaults mirror the original window: an 800x600 box, a 360-ray fan, a
// 200-point trail and five random walls inside the four borders.
const (
	DefaultWidth        = 800
	DefaultHeight       = 600
	DefaultRays         = raycast.DefaultRayCount
	DefaultTrail        = raycast.DefaultTrailCapacity
	DefaultWalls        = 5
	DefaultTPS          = 60
	DefaultNoiseStep    = 0.001
	DefaultNoiseYOffset = 1000.0
)

// ErrInvalidSettings is returned by Validate and LoadSettings for settings that
// cannot drive a world.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings configures a World and its frontends.
type Settings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Rays is the emitter fan size N.
	Rays int `yaml:"rays"`
	// TrailCapacity is the trail length C.
	TrailCapacity int `yaml:"trail_capacity"`
	// Walls is the number of random walls placed inside the borders.
	Walls int `yaml:"walls"`
	// Seed drives wall placement; 0 picks a time-based seed.
	Seed int64 `yaml:"seed"`

	// Workers > 0 selects the parallel scanner with that many goroutines.
	Workers int `yaml:"workers"`
	TPS     int `yaml:"tps"`

	NoiseStep    float64 `yaml:"noise_step"`
	NoiseYOffset float64 `yaml:"noise_y_offset"`
	NoiseSeed    int64   `yaml:"noise_seed"`
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() Settings {
	return Settings{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Rays:          DefaultRays,
		TrailCapacity: DefaultTrail,
		Walls:         DefaultWalls,
		TPS:           DefaultTPS,
		NoiseStep:     DefaultNoiseStep,
		NoiseYOffset:  DefaultNoiseYOffset,
	}
}

// Validate checks that every field is usable.
func (s Settings) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("%w: window %dx%d must be positive", ErrInvalidSettings, s.Width, s.Height)
	case s.Rays <= 0:
		return fmt.Errorf("%w: rays %d must be positive", ErrInvalidSettings, s.Rays)
	case s.TrailCapacity <= 0:
		return fmt.Errorf("%w: trail_capacity %d must be positive", ErrInvalidSettings, s.TrailCapacity)
	case s.Walls < 0:
		return fmt.Errorf("%w: walls %d must not be negative", ErrInvalidSettings, s.Walls)
	case s.Workers < 0:
		return fmt.Errorf("%w: workers %d must not be negative", ErrInvalidSettings, s.Workers)
	case s.TPS <= 0:
		return fmt.Errorf("%w: tps %d must be positive", ErrInvalidSettings, s.TPS)
	case s.NoiseStep <= 0:
		return fmt.Errorf("%w: noise_step %g must be positive", ErrInvalidSettings, s.NoiseStep)
	}
	return nil
}

// DecodeSettings reads YAML from r on top of the defaults. Unknown keys are
// rejected so typos do not silently fall back to defaults.
func DecodeSettings(r io.Reader) (Settings, error) {
	s := DefaultSettings()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("%w: decoding yaml: %v", ErrInvalidSettings, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadSettings reads a YAML settings file. Fields absent from the file keep
// their defaults.
func LoadSettings(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, fmt.Errorf("opening settings: %w", err)
	}
	defer f.Close()
	s, err := DecodeSettings(f)
	if err != nil {
		return Settings{}, fmt.Errorf("loading %q: %w", path, err)
	}
	return s, nil
}
