package ui

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"slotgrid/internal/graphics"
	"slotgrid/internal/graphics/layout"
)

// UI draws screen-space rectangles, flat or textured, in window pixels with
// a top-left origin.
type UI struct {
	shader     *graphics.Shader
	vao        uint32
	vbo        uint32
	projection mgl32.Mat4
}

// NewUI creates an uninitialised UI renderer
func NewUI() *UI {
	return &UI{}
}

// Init compiles the shader and allocates the quad buffer.
func (u *UI) Init(width, height int) error {
	shader, err := graphics.LoadShader("ui")
	if err != nil {
		return err
	}
	u.shader = shader
	u.SetViewport(width, height)

	gl.GenVertexArrays(1, &u.vao)
	gl.GenBuffers(1, &u.vbo)
	gl.BindVertexArray(u.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*4*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return nil
}

// SetViewport updates the pixel projection after a resize.
func (u *UI) SetViewport(width, height int) {
	u.projection = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// Dispose cleans up OpenGL resources
func (u *UI) Dispose() {
	if u.vao != 0 {
		gl.DeleteVertexArrays(1, &u.vao)
	}
	if u.vbo != 0 {
		gl.DeleteBuffers(1, &u.vbo)
	}
	if u.shader != nil {
		u.shader.Delete()
	}
}

// DrawFilledRect draws a solid rectangle.
func (u *UI) DrawFilledRect(x, y, w, h float32, color mgl32.Vec3, alpha float32) {
	u.draw(x, y, w, h, 0, color, alpha)
}

// DrawTexturedRect draws tex stretched over the rectangle, tinted by color.
func (u *UI) DrawTexturedRect(x, y, w, h float32, tex uint32, color mgl32.Vec3, alpha float32) {
	u.draw(x, y, w, h, tex, color, alpha)
}

// DrawRect is DrawFilledRect for a layout.Rect.
func (u *UI) DrawRect(r layout.Rect, color mgl32.Vec3, alpha float32) {
	u.draw(r.X, r.Y, r.W, r.H, 0, color, alpha)
}

// DrawFramedRect draws r filled with bg inside a border of the given thickness.
func (u *UI) DrawFramedRect(r layout.Rect, bg, border mgl32.Vec3, thickness float32) {
	u.DrawRect(r, border, 1)
	u.DrawRect(r.Inset(thickness), bg, 1)
}

func (u *UI) draw(x, y, w, h float32, tex uint32, color mgl32.Vec3, alpha float32) {
	x1, y1 := x+w, y+h
	verts := []float32{
		x, y, 0, 0,
		x1, y, 1, 0,
		x1, y1, 1, 1,
		x, y, 0, 0,
		x1, y1, 1, 1,
		x, y1, 0, 1,
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	u.shader.Use()
	u.shader.SetMatrix4("uProjection", u.projection)
	u.shader.SetVector4("uColor", color.Vec4(alpha))
	u.shader.SetBool("uUseTexture", tex != 0)
	if tex != 0 {
		u.shader.SetInt("uTexture", 0)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, tex)
	}

	gl.BindVertexArray(u.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	if tex != 0 {
		gl.BindTexture(gl.TEXTURE_2D, 0)
	}
	gl.Disable(gl.BLEND)
}
