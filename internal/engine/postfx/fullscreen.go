package postfx

import "github.com/go-gl/gl/v4.1-core/gl"

// fullscreen draws the attribute-less triangle used by every screen-space pass.
// Core profile still requires a bound VAO even without vertex attributes.
type fullscreen struct {
	vao uint32
}

func newFullscreen() *fullscreen {
	f := &fullscreen{}
	gl.GenVertexArrays(1, &f.vao)
	return f
}

func (f *fullscreen) draw() {
	gl.BindVertexArray(f.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}

func (f *fullscreen) destroy() {
	if f.vao != 0 {
		gl.DeleteVertexArrays(1, &f.vao)
		f.vao = 0
	}
}

func bindTexture(unit uint32, tex uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, tex)
}
