// Package scene assembles the hero scene: a camera framing a vertically offset
// stage group that holds the rotating lattice, lit by an ambient and a
// directional light.
package scene

import (
	"github.com/Faultbox/lattice-hero/internal/engine/camera"
	"github.com/Faultbox/lattice-hero/internal/engine/lighting"
	"github.com/Faultbox/lattice-hero/pkg/math"
)

// Config contains rig placement and lighting. Camera heights are relative to
// the stage.
type Config struct {
	StageOffsetY   float32
	LookAtOffsetY  float32
	CameraLift     float32
	CameraDistance float32
	FOV            float32
	Near           float32
	Far            float32

	Ambient lighting.Ambient
	Sun     lighting.Directional
}

// Group is a node transform: translate, rotate about Y then Z, uniform scale.
type Group struct {
	Position  math.Vec3
	RotationY float32
	RotationZ float32
	Scale     float32
}

// Matrix returns the group's local transform.
func (g Group) Matrix() math.Mat4 {
	return math.Translate(g.Position.X, g.Position.Y, g.Position.Z).
		Mul(math.RotateY(g.RotationY)).
		Mul(math.RotateZ(g.RotationZ)).
		Mul(math.Scale(g.Scale, g.Scale, g.Scale))
}

// Rig owns the camera, lights and the stage/lattice group hierarchy.
// It holds no GPU resources; see Mesh for those.
type Rig struct {
	Camera  *camera.PerspectiveCamera
	Stage   Group
	Lattice Group
	Ambient lighting.Ambient
	Sun     lighting.Directional
	Opacity float32

	width, height int
}

// New builds the rig for a surface of the given size.
func New(cfg Config, width, height int) *Rig {
	width, height = clampSize(width), clampSize(height)

	stage := Group{Position: math.Vec3{Y: cfg.StageOffsetY}, Scale: 1}
	eye := math.Vec3{X: 0, Y: cfg.StageOffsetY + cfg.CameraLift, Z: cfg.CameraDistance}
	target := math.Vec3{X: 0, Y: cfg.StageOffsetY + cfg.LookAtOffsetY, Z: 0}

	return &Rig{
		Camera:  camera.NewPerspectiveCamera(cfg.FOV, float32(width)/float32(height), cfg.Near, cfg.Far, eye, target),
		Stage:   stage,
		Lattice: Group{Scale: 1},
		Ambient: cfg.Ambient,
		Sun:     cfg.Sun,
		Opacity: 1,
		width:   width,
		height:  height,
	}
}

func clampSize(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

// Resize updates the surface size and camera aspect. Sizes below 1 are clamped.
func (r *Rig) Resize(width, height int) {
	r.width, r.height = clampSize(width), clampSize(height)
	r.Camera.SetAspect(float32(r.width) / float32(r.height))
}

// Size returns the clamped surface size.
func (r *Rig) Size() (width, height int) {
	return r.width, r.height
}

// SetRotation rotates the lattice group about its vertical axis.
func (r *Rig) SetRotation(angle float32) {
	r.Lattice.RotationY = angle
}

// SetSpin rotates the lattice group about the view axis.
func (r *Rig) SetSpin(angle float32) {
	r.Lattice.RotationZ = angle
}

// SetScale sets the lattice group's uniform scale.
func (r *Rig) SetScale(s float32) {
	r.Lattice.Scale = s
}

// SetFOV sets the camera's vertical field of view in degrees.
func (r *Rig) SetFOV(deg float32) {
	r.Camera.SetFOV(deg)
}

// SetOpacity sets the line and node opacity, clamped to [0, 1].
func (r *Rig) SetOpacity(a float32) {
	switch {
	case a < 0:
		a = 0
	case a > 1:
		a = 1
	}
	r.Opacity = a
}

// Model returns the lattice's world transform (stage * lattice).
func (r *Rig) Model() math.Mat4 {
	return r.Stage.Matrix().Mul(r.Lattice.Matrix())
}

// View returns the camera view matrix.
func (r *Rig) View() math.Mat4 {
	return r.Camera.ViewMatrix()
}

// Projection returns the camera projection matrix.
func (r *Rig) Projection() math.Mat4 {
	return r.Camera.ProjectionMatrix()
}

// PixelsPerUnit returns how many pixels one world unit spans at unit depth
// along the view axis.
func (r *Rig) PixelsPerUnit() float32 {
	p := r.Projection()
	return p[5] * float32(r.height) / 2
}

// MVP returns projection * view * model for the lattice.
func (r *Rig) MVP() math.Mat4 {
	return r.Projection().Mul(r.View()).Mul(r.Model())
}
