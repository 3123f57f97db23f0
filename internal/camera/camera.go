// Package camera implements a spherical orbit camera around a target point.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Defaults and limits for the orbit.
const (
	DefaultDistance  float32 = 8
	DefaultAzimuth   float32 = 45
	DefaultElevation float32 = 30

	MinDistance  float32 = 2
	MaxDistance  float32 = 50
	MaxElevation float32 = 89
)

// Camera orbits a target. Angles are in degrees: azimuth turns around the
// Y axis, elevation lifts the eye above the XZ plane.
type Camera struct {
	distance  float32
	azimuth   float32
	elevation float32
	target    mgl32.Vec3
}

// New creates a camera in the default position.
func New() *Camera {
	c := &Camera{}
	c.Reset()
	return c
}

// Reset restores the default distance, angles and target.
func (c *Camera) Reset() {
	c.distance = DefaultDistance
	c.azimuth = DefaultAzimuth
	c.elevation = DefaultElevation
	c.target = mgl32.Vec3{}
}

// Orbit adds the deltas to the angles. Elevation is clamped short of the
// poles so the view never flips; azimuth wraps into [0, 360). A delta that
// is NaN or infinite is ignored.
func (c *Camera) Orbit(dAzimuth, dElevation float32) {
	if finite(dAzimuth) {
		c.azimuth = wrapDegrees(c.azimuth + dAzimuth)
	}
	if finite(dElevation) {
		c.elevation = mgl32.Clamp(c.elevation+dElevation, -MaxElevation, MaxElevation)
	}
}

// Zoom moves the eye towards (negative) or away from (positive) the target.
func (c *Camera) Zoom(dDistance float32) {
	c.SetDistance(c.distance + dDistance)
}

// SetDistance sets the distance to the target, clamped to the allowed range.
// NaN leaves the distance unchanged.
func (c *Camera) SetDistance(d float32) {
	if math32.IsNaN(d) {
		return
	}
	c.distance = mgl32.Clamp(d, MinDistance, MaxDistance)
}

// SetTarget moves the point the camera looks at.
func (c *Camera) SetTarget(target mgl32.Vec3) {
	c.target = target
}

// Distance returns the distance to the target.
func (c *Camera) Distance() float32 { return c.distance }

// Azimuth returns the horizontal angle in degrees.
func (c *Camera) Azimuth() float32 { return c.azimuth }

// Elevation returns the vertical angle in degrees.
func (c *Camera) Elevation() float32 { return c.elevation }

// Target returns the look-at point.
func (c *Camera) Target() mgl32.Vec3 { return c.target }

// Eye returns the camera position in world space.
func (c *Camera) Eye() mgl32.Vec3 {
	az := mgl32.DegToRad(c.azimuth)
	el := mgl32.DegToRad(c.elevation)
	return c.target.Add(mgl32.Vec3{
		c.distance * math32.Cos(el) * math32.Cos(az),
		c.distance * math32.Sin(el),
		c.distance * math32.Cos(el) * math32.Sin(az),
	})
}

// View returns the look-at matrix from the eye to the target with +Y up.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), c.target, mgl32.Vec3{0, 1, 0})
}

// wrapDegrees maps a finite angle into [0, 360).
func wrapDegrees(a float32) float32 {
	a = math32.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	// a tiny negative remainder rounds up to 360
	if a >= 360 {
		a = 0
	}
	return a
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
