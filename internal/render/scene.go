// Package render projects the cube into a grid of terminal cells.
//
// The cube is drawn the way a fixed-function pipeline would draw it: each
// cubie gets a model matrix, the layer under animation gets one extra
// rotation about its origin, and every coloured face is projected through
// the camera view and a perspective matrix into a depth-buffered canvas.
package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/SeamusWaldron/cubeview/internal/anim"
	"github.com/SeamusWaldron/cubeview/internal/cube"
)

// Instance is one cubie ready to draw.
type Instance struct {
	Cubie    *cube.Cubie
	Model    mgl32.Mat4
	Animated bool
}

// Instances builds the draw list for a frame. When a is active, cubies in
// its layer are wrapped in a rotation by the animation's signed angle about
// the layer origin; everything else is drawn at rest.
func Instances(c *cube.Cube, a anim.Animation) []Instance {
	cubies := c.Cubies()
	out := make([]Instance, 0, len(cubies))

	var layer mgl32.Mat4
	if a.Active {
		layer = LayerTransform(a.Origin, a.Axis, a.SignedAngle())
	}

	for _, cb := range cubies {
		model := mgl32.Translate3D(cb.Position[0], cb.Position[1], cb.Position[2])
		inLayer := a.Active && c.InLayer(cb, a.Origin, a.Axis)
		if inLayer {
			model = layer.Mul4(model)
		}
		out = append(out, Instance{Cubie: cb, Model: model, Animated: inLayer})
	}
	return out
}

// LayerTransform returns the rotation by degrees about axis through origin.
func LayerTransform(origin mgl32.Vec3, axis cube.Axis, degrees float32) mgl32.Mat4 {
	rot := mgl32.HomogRotate3D(mgl32.DegToRad(degrees), axis.Unit())
	to := mgl32.Translate3D(origin[0], origin[1], origin[2])
	back := mgl32.Translate3D(-origin[0], -origin[1], -origin[2])
	return to.Mul4(rot).Mul4(back)
}
