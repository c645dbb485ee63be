// Package postfx implements the post-processing chain drawn after the scene:
// scene render, bloom, afterimage trails, tone-mapped output and a fade overlay.
package postfx

import (
	"go.uber.org/zap"

	"github.com/Faultbox/lattice-hero/internal/logger"
)

// Pass is one stage of the chain. Render receives the previous stage's color
// texture (0 for the first pass) and returns its own output texture; a pass
// that draws to the default framebuffer returns 0.
type Pass interface {
	Name() string
	Render(input uint32) uint32
	Resize(width, height int32)
	Destroy()
}

// Composer runs passes in insertion order.
type Composer struct {
	passes   []Pass
	width    int32
	height   int32
	disposed bool
	log      *zap.Logger
}

// NewComposer creates an empty composer for the given output size.
func NewComposer(width, height int32) *Composer {
	return &Composer{
		width:  clampDim(width),
		height: clampDim(height),
		log:    logger.Named("postfx"),
	}
}

// Add appends a pass. It receives the composer's current size immediately.
func (c *Composer) Add(p Pass) {
	p.Resize(c.width, c.height)
	c.passes = append(c.passes, p)
}

// Names lists the passes in render order.
func (c *Composer) Names() []string {
	names := make([]string, len(c.passes))
	for i, p := range c.passes {
		names[i] = p.Name()
	}
	return names
}

// Size returns the current output size.
func (c *Composer) Size() (width, height int32) {
	return c.width, c.height
}

// Render draws one frame through every pass and returns the last output.
func (c *Composer) Render() uint32 {
	if c.disposed {
		return 0
	}
	var tex uint32
	for _, p := range c.passes {
		tex = p.Render(tex)
	}
	return tex
}

// Resize propagates new dimensions, clamped to at least 1, to every pass.
func (c *Composer) Resize(width, height int32) {
	if c.disposed {
		return
	}
	c.width, c.height = clampDim(width), clampDim(height)
	for _, p := range c.passes {
		p.Resize(c.width, c.height)
	}
	c.log.Debug("resized", zap.Int32("width", c.width), zap.Int32("height", c.height))
}

// Dispose destroys every pass once. Later calls do nothing and return false.
func (c *Composer) Dispose() bool {
	if c.disposed {
		return false
	}
	c.disposed = true
	for i := len(c.passes) - 1; i >= 0; i-- {
		c.passes[i].Destroy()
	}
	c.log.Debug("disposed", zap.Int("passes", len(c.passes)))
	return true
}

func clampDim(v int32) int32 {
	if v < 1 {
		return 1
	}
	return v
}
