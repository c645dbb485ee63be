// Package renderer owns the OpenGL context state shared by every view:
// initialization, viewport, clearing, frame readback, and the content view's
// placeholder card.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/lattice-hero/internal/engine/shader"
	"github.com/Faultbox/lattice-hero/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [3]float32
}

// Renderer handles context-wide OpenGL state.
type Renderer struct {
	config Config

	card    *shader.Program
	cardVAO uint32
}

// New initializes OpenGL.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.card, err = shader.New("card", cardVertexShader, cardFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create card shader: %w", err)
	}
	gl.GenVertexArrays(1, &r.cardVAO)

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.cardVAO != 0 {
		gl.DeleteVertexArrays(1, &r.cardVAO)
		r.cardVAO = 0
	}
	if r.card != nil {
		r.card.Delete()
		r.card = nil
	}
}

// Resize handles drawable resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Begin binds the default framebuffer and clears it.
func (r *Renderer) Begin() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(r.config.Width), int32(r.config.Height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawCard draws the content view placeholder: a centered rounded panel
// faded in by alpha.
func (r *Renderer) DrawCard(alpha float32) {
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r.card.Use()
	r.card.SetVec2("uResolution", float32(r.config.Width), float32(r.config.Height))
	r.card.SetFloat("uAlpha", alpha)
	gl.BindVertexArray(r.cardVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
}

// ReadPixels returns the default framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

const cardVertexShader = `#version 410 core
out vec2 vUV;
void main() {
	vec2 pos = vec2((gl_VertexID << 1) & 2, gl_VertexID & 2);
	vUV = pos;
	gl_Position = vec4(pos * 2.0 - 1.0, 0.0, 1.0);
}
`

const cardFragmentShader = `#version 410 core
in vec2 vUV;
out vec4 FragColor;
uniform vec2 uResolution;
uniform float uAlpha;

float roundedBox(vec2 p, vec2 b, float r) {
	vec2 q = abs(p) - b + r;
	return length(max(q, 0.0)) + min(max(q.x, q.y), 0.0) - r;
}

void main() {
	vec2 p = (vUV - 0.5) * uResolution;
	vec2 box = vec2(min(uResolution.x * 0.35, 520.0), min(uResolution.y * 0.3, 260.0));
	float d = roundedBox(p, box, 18.0);
	float inside = 1.0 - smoothstep(-1.0, 1.0, d);
	float border = 1.0 - smoothstep(0.0, 1.5, abs(d));
	// card #121212, accent #6ee7ff
	vec3 fill = vec3(0.071);
	vec3 color = mix(fill, vec3(0.431, 0.906, 1.0), border * 0.6);
	FragColor = vec4(color, max(inside, border) * uAlpha);
}
`
