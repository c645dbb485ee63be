// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/lattice-hero/pkg/math"
)

// PerspectiveCamera is a fixed-position camera aimed at a look-at target.
// FOV is the vertical field of view in degrees.
type PerspectiveCamera struct {
	FOV    float32
	Aspect float32
	Near   float32
	Far    float32

	Position math.Vec3
	Up       math.Vec3

	target math.Vec3
	view   math.Mat4
}

// NewPerspectiveCamera creates a camera at position looking at target.
func NewPerspectiveCamera(fov, aspect, near, far float32, position, target math.Vec3) *PerspectiveCamera {
	c := &PerspectiveCamera{
		FOV:      fov,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
		Position: position,
		Up:       math.Vec3{X: 0, Y: 1, Z: 0},
	}
	c.LookAt(target)
	return c
}

// LookAt aims the camera at target and rebuilds the view matrix.
func (c *PerspectiveCamera) LookAt(target math.Vec3) {
	c.target = target
	c.view = math.LookAt(c.Position, target, c.Up)
}

// Target returns the current look-at point.
func (c *PerspectiveCamera) Target() math.Vec3 {
	return c.target
}

// SetAspect updates the aspect ratio. The look-at target is re-applied so a
// resize never changes where the camera points.
func (c *PerspectiveCamera) SetAspect(aspect float32) {
	if aspect <= 0 {
		aspect = 1
	}
	c.Aspect = aspect
	c.LookAt(c.target)
}

// SetFOV sets the vertical field of view in degrees, clamped to (1, 179).
func (c *PerspectiveCamera) SetFOV(deg float32) {
	if deg < 1 {
		deg = 1
	}
	if deg > 179 {
		deg = 179
	}
	c.FOV = deg
}

// ViewMatrix returns the view matrix for this camera.
func (c *PerspectiveCamera) ViewMatrix() math.Mat4 {
	return c.view
}

// ProjectionMatrix returns the perspective projection for the current FOV and aspect.
func (c *PerspectiveCamera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.FOV*math32.Pi/180, c.Aspect, c.Near, c.Far)
}
