package postfx

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/lattice-hero/internal/engine/postfx/shaders"
	"github.com/Faultbox/lattice-hero/internal/engine/shader"
)

// OverlayPass blends a black layer of the given Opacity over the output.
type OverlayPass struct {
	Opacity float32

	screen  *fullscreen
	program *shader.Program
}

// NewOverlayPass compiles the overlay program.
func NewOverlayPass(screen *fullscreen) (*OverlayPass, error) {
	prog, err := shader.New("overlay", shaders.FullscreenVertexShader, shaders.OverlayFragmentShader)
	if err != nil {
		return nil, err
	}
	return &OverlayPass{screen: screen, program: prog}, nil
}

// Name implements Pass.
func (p *OverlayPass) Name() string { return "overlay" }

// Render implements Pass. It draws on whatever target the previous pass left bound.
func (p *OverlayPass) Render(input uint32) uint32 {
	if p.Opacity <= 0 {
		return input
	}
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	p.program.Use()
	p.program.SetFloat("uOpacity", p.Opacity)
	p.screen.draw()
	gl.Disable(gl.BLEND)
	return input
}

// Resize implements Pass; the overlay has no sized resources.
func (p *OverlayPass) Resize(int32, int32) {}

// Destroy implements Pass.
func (p *OverlayPass) Destroy() {
	p.program.Delete()
}
