package postfx

import (
	"fmt"

	"github.com/Faultbox/lattice-hero/internal/engine/framebuffer"
	"github.com/Faultbox/lattice-hero/internal/engine/postfx/shaders"
	"github.com/Faultbox/lattice-hero/internal/engine/shader"
)

// BloomPass extracts highlights above Threshold, blurs them at half
// resolution and adds them back scaled by Strength.
type BloomPass struct {
	Strength   float32
	Threshold  float32
	Radius     float32
	Iterations int

	screen    *fullscreen
	bright    *framebuffer.Framebuffer
	ping      *framebuffer.Framebuffer
	pong      *framebuffer.Framebuffer
	out       *framebuffer.Framebuffer
	luminance *shader.Program
	blur      *shader.Program
	composite *shader.Program
}

// NewBloomPass compiles the bloom programs and allocates its targets.
func NewBloomPass(screen *fullscreen, strength, threshold, radius float32) (*BloomPass, error) {
	p := &BloomPass{
		Strength:   strength,
		Threshold:  threshold,
		Radius:     radius,
		Iterations: 3,
		screen:     screen,
	}

	var err error
	if p.luminance, err = shader.New("bloom luminosity", shaders.FullscreenVertexShader, shaders.LuminosityFragmentShader); err != nil {
		p.Destroy()
		return nil, err
	}
	if p.blur, err = shader.New("bloom blur", shaders.FullscreenVertexShader, shaders.BlurFragmentShader); err != nil {
		p.Destroy()
		return nil, err
	}
	if p.composite, err = shader.New("bloom composite", shaders.FullscreenVertexShader, shaders.BloomCompositeFragmentShader); err != nil {
		p.Destroy()
		return nil, err
	}

	for _, target := range []**framebuffer.Framebuffer{&p.bright, &p.ping, &p.pong, &p.out} {
		if *target, err = framebuffer.New(1, 1, framebuffer.HDRColor); err != nil {
			p.Destroy()
			return nil, fmt.Errorf("bloom target: %w", err)
		}
	}

	return p, nil
}

// Name implements Pass.
func (p *BloomPass) Name() string { return "bloom" }

// Render implements Pass.
func (p *BloomPass) Render(input uint32) uint32 {
	if p.Strength <= 0 {
		return input
	}

	p.bright.Bind()
	p.luminance.Use()
	bindTexture(0, input)
	p.luminance.SetInt("uInput", 0)
	p.luminance.SetFloat("uThreshold", p.Threshold)
	p.luminance.SetFloat("uSmoothWidth", 0.01)
	p.screen.draw()

	w, h := p.ping.Size()
	p.blur.Use()
	p.blur.SetInt("uInput", 0)
	src := p.bright
	for i := 0; i < p.Iterations; i++ {
		p.pong.Bind()
		bindTexture(0, src.ColorTexture())
		p.blur.SetVec2("uDirection", p.Radius/float32(w), 0)
		p.screen.draw()

		p.ping.Bind()
		bindTexture(0, p.pong.ColorTexture())
		p.blur.SetVec2("uDirection", 0, p.Radius/float32(h))
		p.screen.draw()
		src = p.ping
	}

	p.out.Bind()
	p.composite.Use()
	bindTexture(0, input)
	bindTexture(1, p.ping.ColorTexture())
	p.composite.SetInt("uBase", 0)
	p.composite.SetInt("uBloom", 1)
	p.composite.SetFloat("uStrength", p.Strength)
	p.screen.draw()

	return p.out.ColorTexture()
}

// Resize implements Pass. Blur targets run at half resolution.
func (p *BloomPass) Resize(width, height int32) {
	p.out.Resize(width, height)
	hw, hh := width/2, height/2
	p.bright.Resize(hw, hh)
	p.ping.Resize(hw, hh)
	p.pong.Resize(hw, hh)
}

// Destroy implements Pass.
func (p *BloomPass) Destroy() {
	for _, fb := range []*framebuffer.Framebuffer{p.bright, p.ping, p.pong, p.out} {
		if fb != nil {
			fb.Destroy()
		}
	}
	for _, prog := range []*shader.Program{p.luminance, p.blur, p.composite} {
		if prog != nil {
			prog.Delete()
		}
	}
}
