package postfx

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/lattice-hero/internal/engine/postfx/shaders"
	"github.com/Faultbox/lattice-hero/internal/engine/shader"
)

// OutputPass tone-maps the HDR chain onto the default framebuffer.
type OutputPass struct {
	Exposure float32

	screen        *fullscreen
	program       *shader.Program
	width, height int32
}

// NewOutputPass compiles the tone-mapping program.
func NewOutputPass(screen *fullscreen, exposure float32) (*OutputPass, error) {
	prog, err := shader.New("output", shaders.FullscreenVertexShader, shaders.OutputFragmentShader)
	if err != nil {
		return nil, err
	}
	return &OutputPass{Exposure: exposure, screen: screen, program: prog, width: 1, height: 1}, nil
}

// Name implements Pass.
func (p *OutputPass) Name() string { return "output" }

// Render implements Pass. It always returns 0, the default framebuffer.
func (p *OutputPass) Render(input uint32) uint32 {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, p.width, p.height)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)

	p.program.Use()
	bindTexture(0, input)
	p.program.SetInt("uInput", 0)
	p.program.SetFloat("uExposure", p.Exposure)
	p.screen.draw()
	return 0
}

// Resize implements Pass.
func (p *OutputPass) Resize(width, height int32) {
	p.width, p.height = width, height
}

// Destroy implements Pass.
func (p *OutputPass) Destroy() {
	p.program.Delete()
}
