// Package config loads viewer settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubeview/internal/anim"
	"github.com/SeamusWaldron/cubeview/internal/camera"
	"github.com/SeamusWaldron/cubeview/internal/cube"
	"github.com/SeamusWaldron/cubeview/internal/input"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// DefaultTickMs is the frame timer interval.
const DefaultTickMs = 16

// Config holds every viewer setting.
type Config struct {
	Cube      CubeConfig        `yaml:"cube"`
	Animation AnimationConfig   `yaml:"animation"`
	Camera    CameraConfig      `yaml:"camera"`
	Bindings  map[string]string `yaml:"bindings,omitempty"`
	LogFile   string            `yaml:"log_file,omitempty"`
}

// CubeConfig sets the cube geometry.
type CubeConfig struct {
	Spacing   float32 `yaml:"spacing"`
	Tolerance float32 `yaml:"tolerance"`
}

// AnimationConfig sets the layer rotation timing.
type AnimationConfig struct {
	Speed  float32 `yaml:"speed"`   // degrees per tick
	Target float32 `yaml:"target"`  // degrees per turn
	TickMs int     `yaml:"tick_ms"` // frame interval
}

// CameraConfig sets the camera control steps.
type CameraConfig struct {
	OrbitStep        float32 `yaml:"orbit_step"`
	ZoomStep         float32 `yaml:"zoom_step"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	WheelStep        float32 `yaml:"wheel_step"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Cube: CubeConfig{
			Spacing:   cube.DefaultSpacing,
			Tolerance: cube.DefaultTolerance,
		},
		Animation: AnimationConfig{
			Speed:  anim.DefaultSpeed,
			Target: anim.DefaultTarget,
			TickMs: DefaultTickMs,
		},
		Camera: CameraConfig{
			OrbitStep:        input.OrbitStep,
			ZoomStep:         input.ZoomStep,
			MouseSensitivity: input.DefaultMouseSensitivity,
			WheelStep:        input.DefaultWheelStep,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	return Parse(b)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(b []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Upper bounds for the step settings.
const (
	MaxOrbitStep        float32 = 180
	MaxMouseSensitivity float32 = 90
	MaxZoomStep                 = camera.MaxDistance - camera.MinDistance
	MaxTarget           float32 = 360
)

// Validate checks ranges and key bindings. Every number must be finite.
func (c Config) Validate() error {
	if !finite(c.Cube.Spacing) || c.Cube.Spacing <= 0 {
		return fmt.Errorf("%w: cube.spacing %v must be positive", ErrInvalid, c.Cube.Spacing)
	}
	if !finite(c.Cube.Tolerance) || c.Cube.Tolerance <= 0 || c.Cube.Tolerance >= c.Cube.Spacing/2 {
		return fmt.Errorf("%w: cube.tolerance %v must be in (0, %v)", ErrInvalid, c.Cube.Tolerance, c.Cube.Spacing/2)
	}
	if err := inRange("animation.target", c.Animation.Target, MaxTarget); err != nil {
		return err
	}
	if err := inRange("animation.speed", c.Animation.Speed, c.Animation.Target); err != nil {
		return err
	}
	if c.Animation.TickMs <= 0 {
		return fmt.Errorf("%w: animation.tick_ms %d must be positive", ErrInvalid, c.Animation.TickMs)
	}
	if err := inRange("camera.orbit_step", c.Camera.OrbitStep, MaxOrbitStep); err != nil {
		return err
	}
	if err := inRange("camera.zoom_step", c.Camera.ZoomStep, MaxZoomStep); err != nil {
		return err
	}
	if err := inRange("camera.mouse_sensitivity", c.Camera.MouseSensitivity, MaxMouseSensitivity); err != nil {
		return err
	}
	if err := inRange("camera.wheel_step", c.Camera.WheelStep, MaxZoomStep); err != nil {
		return err
	}
	if _, err := c.KeyBindings(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// inRange checks that v is finite and in (0, limit].
func inRange(name string, v, limit float32) error {
	if !finite(v) || v <= 0 || v > limit {
		return fmt.Errorf("%w: %s %v must be in (0, %v]", ErrInvalid, name, v, limit)
	}
	return nil
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

// KeyBindings returns the default bindings with the configured overrides
// and step sizes applied.
func (c Config) KeyBindings() (input.Bindings, error) {
	b := input.DefaultBindings()
	if err := b.Override(c.Bindings); err != nil {
		return nil, err
	}
	b.Scale(c.Camera.OrbitStep/input.OrbitStep, c.Camera.ZoomStep/input.ZoomStep)
	return b, nil
}

// CubeOptions returns the cube construction options.
func (c Config) CubeOptions() []cube.Option {
	return []cube.Option{
		cube.WithSpacing(c.Cube.Spacing),
		cube.WithTolerance(c.Cube.Tolerance),
	}
}

// Marshal encodes the settings as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
