package postfx

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/lattice-hero/internal/logger"
)

// Settings are the initial pass parameters.
type Settings struct {
	BloomStrength  float32
	BloomThreshold float32
	BloomRadius    float32
	Damp           float32
	Exposure       float32
	Background     [3]float32
}

// Pipeline is the fixed render → bloom → afterimage → output → overlay chain.
type Pipeline struct {
	composer   *Composer
	screen     *fullscreen
	scene      *RenderPass
	bloom      *BloomPass
	afterimage *AfterimagePass
	output     *OutputPass
	overlay    *OverlayPass
	log        *zap.Logger
}

// New builds the chain. draw is called inside the scene pass with its target bound.
// Must be called with a current GL context.
func New(width, height int32, settings Settings, draw func()) (*Pipeline, error) {
	p := &Pipeline{
		composer: NewComposer(width, height),
		screen:   newFullscreen(),
		log:      logger.Named("postfx"),
	}

	var err error
	if p.scene, err = NewRenderPass(draw); err != nil {
		p.abort()
		return nil, fmt.Errorf("render pass: %w", err)
	}
	p.scene.Clear = [4]float32{settings.Background[0], settings.Background[1], settings.Background[2], 1}
	p.composer.Add(p.scene)

	if p.bloom, err = NewBloomPass(p.screen, settings.BloomStrength, settings.BloomThreshold, settings.BloomRadius); err != nil {
		p.abort()
		return nil, fmt.Errorf("bloom pass: %w", err)
	}
	p.composer.Add(p.bloom)

	if p.afterimage, err = NewAfterimagePass(p.screen, settings.Damp); err != nil {
		p.abort()
		return nil, fmt.Errorf("afterimage pass: %w", err)
	}
	p.composer.Add(p.afterimage)

	if p.output, err = NewOutputPass(p.screen, settings.Exposure); err != nil {
		p.abort()
		return nil, fmt.Errorf("output pass: %w", err)
	}
	p.composer.Add(p.output)

	if p.overlay, err = NewOverlayPass(p.screen); err != nil {
		p.abort()
		return nil, fmt.Errorf("overlay pass: %w", err)
	}
	p.composer.Add(p.overlay)

	p.log.Info("pipeline ready",
		zap.Strings("passes", p.composer.Names()),
		zap.Int32("width", width),
		zap.Int32("height", height),
	)
	return p, nil
}

// abort releases whatever New managed to create.
func (p *Pipeline) abort() {
	p.composer.Dispose()
	p.screen.destroy()
}

// Render draws one frame to the default framebuffer.
func (p *Pipeline) Render() {
	p.composer.Render()
}

// Resize propagates new drawable dimensions to every pass.
func (p *Pipeline) Resize(width, height int32) {
	p.composer.Resize(width, height)
}

// SetBloomStrength sets the glow gain. Zero disables bloom.
func (p *Pipeline) SetBloomStrength(v float32) {
	if v < 0 {
		v = 0
	}
	p.bloom.Strength = v
}

// SetAfterimageDamp sets the trail decay, clamped to [0, MaxDamp].
func (p *Pipeline) SetAfterimageDamp(v float32) {
	p.afterimage.Damp = ClampDamp(v)
}

// SetExposure sets the tone-mapping exposure.
func (p *Pipeline) SetExposure(v float32) {
	if v < 0 {
		v = 0
	}
	p.output.Exposure = v
}

// SetOverlayOpacity sets the black fade layer opacity, clamped to [0, 1].
func (p *Pipeline) SetOverlayOpacity(v float32) {
	switch {
	case v < 0:
		v = 0
	case v > 1:
		v = 1
	}
	p.overlay.Opacity = v
}

// Dispose releases every GPU resource owned by the chain. Only the first call has effect.
func (p *Pipeline) Dispose() {
	if p.composer.Dispose() {
		p.screen.destroy()
	}
}
