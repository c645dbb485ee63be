package postfx

import (
	"github.com/Faultbox/lattice-hero/internal/engine/framebuffer"
	"github.com/Faultbox/lattice-hero/internal/engine/postfx/shaders"
	"github.com/Faultbox/lattice-hero/internal/engine/shader"
)

// MaxDamp keeps the trail decay strictly below 1.
const MaxDamp = 0.999

// AfterimagePass accumulates motion trails: out = max(new, old*Damp).
// The previous frame fades by Damp each frame, so lowering it shortens trails.
type AfterimagePass struct {
	Damp float32

	screen  *fullscreen
	accum   [2]*framebuffer.Framebuffer
	current int
	program *shader.Program
}

// NewAfterimagePass compiles the trail program and allocates both accumulators.
func NewAfterimagePass(screen *fullscreen, damp float32) (*AfterimagePass, error) {
	p := &AfterimagePass{Damp: ClampDamp(damp), screen: screen}

	var err error
	if p.program, err = shader.New("afterimage", shaders.FullscreenVertexShader, shaders.AfterimageFragmentShader); err != nil {
		return nil, err
	}
	for i := range p.accum {
		if p.accum[i], err = framebuffer.New(1, 1, framebuffer.HDRColor); err != nil {
			p.Destroy()
			return nil, err
		}
		p.accum[i].Bind()
		p.accum[i].Clear(0, 0, 0, 0)
	}
	p.accum[0].Unbind()
	return p, nil
}

// ClampDamp keeps damp inside [0, MaxDamp].
func ClampDamp(damp float32) float32 {
	if damp < 0 {
		return 0
	}
	if damp > MaxDamp {
		return MaxDamp
	}
	return damp
}

// Name implements Pass.
func (p *AfterimagePass) Name() string { return "afterimage" }

// Render implements Pass.
func (p *AfterimagePass) Render(input uint32) uint32 {
	prev := p.accum[p.current]
	next := p.accum[1-p.current]

	next.Bind()
	p.program.Use()
	bindTexture(0, input)
	bindTexture(1, prev.ColorTexture())
	p.program.SetInt("uNew", 0)
	p.program.SetInt("uOld", 1)
	p.program.SetFloat("uDamp", p.Damp)
	p.screen.draw()

	p.current = 1 - p.current
	return next.ColorTexture()
}

// Resize implements Pass. Reallocated accumulators start empty.
func (p *AfterimagePass) Resize(width, height int32) {
	for _, fb := range p.accum {
		if fb.Resize(width, height) {
			fb.Bind()
			fb.Clear(0, 0, 0, 0)
			fb.Unbind()
		}
	}
}

// Destroy implements Pass.
func (p *AfterimagePass) Destroy() {
	for _, fb := range p.accum {
		if fb != nil {
			fb.Destroy()
		}
	}
	if p.program != nil {
		p.program.Delete()
	}
}
