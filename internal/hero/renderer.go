package hero

import (
	"fmt"
	"math"

	"github.com/Faultbox/lattice-hero/internal/animation"
	"github.com/Faultbox/lattice-hero/internal/engine/postfx"
	"github.com/Faultbox/lattice-hero/internal/engine/scene"
	"github.com/Faultbox/lattice-hero/internal/lattice"
)

const fullTurn = 2 * math.Pi

// glRenderer draws the rig's mesh through the post-processing pipeline.
type glRenderer struct {
	rig      *scene.Rig
	mesh     *scene.Mesh
	pipeline *postfx.Pipeline
}

// NewGLRenderer is the default RendererFactory. It needs a current OpenGL
// 4.1 context.
func NewGLRenderer(cfg Config, l *lattice.Lattice, width, height int) (Renderer, error) {
	r := &glRenderer{
		rig: scene.New(cfg.Scene, width, height),
	}

	mesh, err := scene.NewMesh(l, cfg.Style)
	if err != nil {
		return nil, fmt.Errorf("lattice mesh: %w", err)
	}
	r.mesh = mesh

	w, h := r.rig.Size()
	r.pipeline, err = postfx.New(int32(w), int32(h), cfg.Effects, r.draw)
	if err != nil {
		mesh.Destroy()
		return nil, fmt.Errorf("render pipeline: %w", err)
	}
	return r, nil
}

func (r *glRenderer) draw() {
	r.mesh.Draw(r.rig)
}

// Apply maps the animation state onto the rig and the passes.
func (r *glRenderer) Apply(s animation.State) {
	p := s.Params
	r.rig.SetRotation(float32(math.Mod(s.Rotation, fullTurn)))
	r.rig.SetSpin(float32(math.Mod(p.Spin, fullTurn)))
	r.rig.SetScale(float32(p.Scale))
	r.rig.SetFOV(float32(p.FOV))
	r.rig.SetOpacity(float32(p.Opacity))

	r.pipeline.SetBloomStrength(float32(p.Bloom))
	r.pipeline.SetAfterimageDamp(float32(p.Damp))
	r.pipeline.SetExposure(float32(p.Exposure))
	r.pipeline.SetOverlayOpacity(float32(s.Overlay))
}

func (r *glRenderer) Render() {
	r.pipeline.Render()
}

func (r *glRenderer) Resize(width, height int) {
	r.rig.Resize(width, height)
	w, h := r.rig.Size()
	r.pipeline.Resize(int32(w), int32(h))
}

func (r *glRenderer) Dispose() {
	r.pipeline.Dispose()
	r.mesh.Destroy()
}
