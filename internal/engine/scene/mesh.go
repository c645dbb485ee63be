package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/lattice-hero/internal/engine/scene/shaders"
	"github.com/Faultbox/lattice-hero/internal/engine/shader"
	"github.com/Faultbox/lattice-hero/internal/lattice"
	"github.com/Faultbox/lattice-hero/internal/logger"
)

// Style controls how the lattice is drawn.
type Style struct {
	LineColor [3]float32
	NodeColor [3]float32
	// NodeRadius is the world-space radius of each node sphere.
	NodeRadius float32
	// Glow multiplies colors past 1.0 so the bloom threshold catches them.
	Glow float32
}

// Mesh holds the GPU buffers and programs for one lattice.
type Mesh struct {
	style Style

	lineVAO, lineVBO   uint32
	pointVAO, pointVBO uint32
	lineCount          int32
	pointCount         int32

	lines *shader.Program
	nodes *shader.Program
}

// NewMesh uploads the lattice primitives. Must be called with a current GL context.
func NewMesh(l *lattice.Lattice, style Style) (*Mesh, error) {
	m := &Mesh{style: style}

	var err error
	if m.lines, err = shader.New("lattice lines", shaders.LineVertexShader, shaders.LineFragmentShader); err != nil {
		return nil, err
	}
	if m.nodes, err = shader.New("lattice nodes", shaders.NodeVertexShader, shaders.NodeFragmentShader); err != nil {
		m.Destroy()
		return nil, err
	}

	lineData := l.LineVertices()
	pointData := l.PointVertices()
	if len(lineData) == 0 || len(pointData) == 0 {
		m.Destroy()
		return nil, fmt.Errorf("empty lattice")
	}

	m.lineVAO, m.lineVBO = upload(lineData)
	m.lineCount = int32(l.LineVertexCount())
	m.pointVAO, m.pointVBO = upload(pointData)
	m.pointCount = int32(len(pointData) / 3)

	logger.Debug("lattice mesh uploaded",
		zap.Int32("line_vertices", m.lineCount),
		zap.Int32("nodes", m.pointCount),
	)
	return m, nil
}

// upload creates a VAO with a single vec3 position attribute at location 0.
func upload(data []float32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return vao, vbo
}

// Draw renders edges then nodes using the rig's current transforms.
func (m *Mesh) Draw(r *Rig) {
	mvp := r.MVP()
	view := r.View()

	// Lines are translucent; depth writes would let near edges hide far ones.
	gl.DepthMask(false)

	m.lines.Use()
	m.lines.SetMat4("uMVP", (*[16]float32)(&mvp))
	m.lines.SetVec3("uColor", m.style.LineColor)
	m.lines.SetFloat("uGlow", m.style.Glow)
	m.lines.SetFloat("uOpacity", r.Opacity)
	gl.BindVertexArray(m.lineVAO)
	gl.DrawArrays(gl.LINES, 0, m.lineCount)

	gl.DepthMask(true)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	m.nodes.Use()
	m.nodes.SetMat4("uMVP", (*[16]float32)(&mvp))
	m.nodes.SetMat4("uView", (*[16]float32)(&view))
	m.nodes.SetFloat("uNodeRadius", m.style.NodeRadius*r.Lattice.Scale)
	m.nodes.SetFloat("uPixelScale", r.PixelsPerUnit())
	m.nodes.SetVec3("uColor", m.style.NodeColor)
	m.nodes.SetFloat("uGlow", m.style.Glow)
	m.nodes.SetFloat("uOpacity", r.Opacity)
	m.nodes.SetVec3("uAmbient", r.Ambient.Scaled())
	m.nodes.SetVec3("uLightColor", r.Sun.Scaled())
	m.nodes.SetVec3("uLightDir", r.Sun.Direction)
	gl.BindVertexArray(m.pointVAO)
	gl.DrawArrays(gl.POINTS, 0, m.pointCount)

	gl.Disable(gl.PROGRAM_POINT_SIZE)
	gl.BindVertexArray(0)
}

// Destroy releases buffers and programs.
func (m *Mesh) Destroy() {
	if m.lineVAO != 0 {
		gl.DeleteVertexArrays(1, &m.lineVAO)
		m.lineVAO = 0
	}
	if m.lineVBO != 0 {
		gl.DeleteBuffers(1, &m.lineVBO)
		m.lineVBO = 0
	}
	if m.pointVAO != 0 {
		gl.DeleteVertexArrays(1, &m.pointVAO)
		m.pointVAO = 0
	}
	if m.pointVBO != 0 {
		gl.DeleteBuffers(1, &m.pointVBO)
		m.pointVBO = 0
	}
	if m.lines != nil {
		m.lines.Delete()
	}
	if m.nodes != nil {
		m.nodes.Delete()
	}
}
