package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// ClearColor is the window background behind the panel.
var ClearColor = mgl32.Vec3{0.08, 0.08, 0.1}

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
}

// NewRenderer initialises every renderable in order.
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	for i, r := range rs {
		if err := r.Init(width, height); err != nil {
			// Release the ones that did come up.
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %T: %w", r, err)
		}
	}
	return &Renderer{renderables: rs}, nil
}

// Render clears the frame and draws every feature in order.
func (r *Renderer) Render(ctx RenderContext) {
	gl.ClearColor(ClearColor.X(), ClearColor.Y(), ClearColor.Z(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// SetViewport resizes the GL viewport and forwards the window size.
func (r *Renderer) SetViewport(fbWidth, fbHeight, winWidth, winHeight int) {
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	for _, renderable := range r.renderables {
		renderable.SetViewport(winWidth, winHeight)
	}
}
