package renderer

// RenderContext provides shared per-frame state for all renderables
type RenderContext struct {
	DT     float64
	MouseX float64
	MouseY float64
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init(width, height int) error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
