// Package anim drives the quarter-turn animation of a single cube layer.
package anim

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/SeamusWaldron/cubeview/internal/cube"
)

// Defaults match a 16ms frame timer: 30 ticks, about half a second, per turn.
const (
	DefaultSpeed  float32 = 3
	DefaultTarget float32 = 90
)

// Rotator commits a finished layer rotation.
type Rotator interface {
	RotateLayer(origin mgl32.Vec3, axis cube.Axis, clockwise bool) error
}

// Animation describes the rotation in progress.
type Animation struct {
	Active    bool
	Origin    mgl32.Vec3
	Axis      cube.Axis
	Clockwise bool
	Angle     float32 // degrees turned so far
	Target    float32 // degrees at completion
	Speed     float32 // degrees per tick
}

// SignedAngle returns the visual rotation angle in degrees. Clockwise
// turns are negative, matching the quarter turn RotateLayer commits.
func (a Animation) SignedAngle() float32 {
	if a.Clockwise {
		return -a.Angle
	}
	return a.Angle
}

// Progress returns how far the animation has run, from 0 to 1.
func (a Animation) Progress() float32 {
	if a.Target <= 0 {
		return 1
	}
	return mgl32.Clamp(a.Angle/a.Target, 0, 1)
}

// Option configures a Controller.
type Option func(*Controller)

// WithSpeed sets the angle advanced on every tick.
func WithSpeed(degrees float32) Option {
	return func(c *Controller) {
		if degrees > 0 {
			c.speed = degrees
		}
	}
}

// WithTarget sets the angle at which an animation completes.
func WithTarget(degrees float32) Option {
	return func(c *Controller) {
		if degrees > 0 {
			c.target = degrees
		}
	}
}

// WithOnComplete registers a callback fired after each committed rotation
// with the final animation state and the commit error, if any.
func WithOnComplete(fn func(Animation, error)) Option {
	return func(c *Controller) {
		c.onComplete = fn
	}
}

// WithLogger sets a logger for start and completion messages.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// Controller is a single-slot animation state machine: Idle until Start,
// Running until the angle reaches the target, then Idle again after the
// rotation is committed to the Rotator.
type Controller struct {
	rotator    Rotator
	speed      float32
	target     float32
	current    Animation
	onComplete func(Animation, error)
	logger     *log.Logger
}

// NewController creates an idle controller that commits to r.
func NewController(r Rotator, opts ...Option) *Controller {
	c := &Controller{
		rotator: r,
		speed:   DefaultSpeed,
		target:  DefaultTarget,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins animating the layer through origin along axis. It does
// nothing and returns false while another animation is running.
func (c *Controller) Start(origin mgl32.Vec3, axis cube.Axis, clockwise bool) bool {
	if c.current.Active {
		return false
	}
	c.current = Animation{
		Active:    true,
		Origin:    origin,
		Axis:      axis,
		Clockwise: clockwise,
		Angle:     0,
		Target:    c.target,
		Speed:     c.speed,
	}
	c.logf("starting %s rotation at %v, clockwise=%v", axis, origin, clockwise)
	return true
}

// Tick advances a running animation by one step. When the target is
// reached the angle is clamped, the rotation is committed exactly once and
// the controller returns to Idle. The commit error is returned.
func (c *Controller) Tick() error {
	if !c.current.Active {
		return nil
	}

	c.current.Angle += c.current.Speed
	if c.current.Angle < c.current.Target {
		return nil
	}

	c.current.Angle = c.current.Target
	c.current.Active = false

	var err error
	if c.rotator != nil {
		err = c.rotator.RotateLayer(c.current.Origin, c.current.Axis, c.current.Clockwise)
	}
	if err != nil {
		c.logf("rotation failed: %v", err)
	} else {
		c.logf("rotation complete")
	}
	if c.onComplete != nil {
		c.onComplete(c.current, err)
	}
	return err
}

// Stop abandons a running animation without committing it.
func (c *Controller) Stop() {
	c.current.Active = false
	c.current.Angle = 0
}

// Active reports whether an animation is running.
func (c *Controller) Active() bool {
	return c.current.Active
}

// Current returns the state of the current or last animation.
func (c *Controller) Current() Animation {
	return c.current
}

// SignedAngle returns the visual angle of the running animation.
func (c *Controller) SignedAngle() float32 {
	return c.current.SignedAngle()
}

// Speed returns the configured angle per tick.
func (c *Controller) Speed() float32 {
	return c.speed
}

func (c *Controller) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}
