package postfx

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/lattice-hero/internal/engine/framebuffer"
)

// RenderPass draws the scene into an HDR target.
type RenderPass struct {
	fb    *framebuffer.Framebuffer
	draw  func()
	Clear [4]float32
}

// NewRenderPass creates the scene pass. draw issues the scene's draw calls.
func NewRenderPass(draw func()) (*RenderPass, error) {
	fb, err := framebuffer.New(1, 1, framebuffer.HDR)
	if err != nil {
		return nil, err
	}
	return &RenderPass{fb: fb, draw: draw, Clear: [4]float32{0, 0, 0, 1}}, nil
}

// Name implements Pass.
func (p *RenderPass) Name() string { return "render" }

// Render implements Pass; input is ignored.
func (p *RenderPass) Render(uint32) uint32 {
	p.fb.Bind()
	p.fb.Clear(p.Clear[0], p.Clear[1], p.Clear[2], p.Clear[3])

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	p.draw()

	gl.Disable(gl.BLEND)
	gl.Disable(gl.DEPTH_TEST)
	return p.fb.ColorTexture()
}

// Resize implements Pass.
func (p *RenderPass) Resize(width, height int32) {
	p.fb.Resize(width, height)
}

// Destroy implements Pass.
func (p *RenderPass) Destroy() {
	p.fb.Destroy()
}
