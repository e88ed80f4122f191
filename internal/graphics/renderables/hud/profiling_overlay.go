package hud

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"slotgrid/internal/config"
	"slotgrid/internal/profiling"
)

// ProfilingOverlay shows FPS and the slowest frame sections in the top-left
// corner while enabled.
type ProfilingOverlay struct {
	frames       int
	lastFPSCheck time.Time
	currentFPS   int
	lastFrame    time.Duration
}

func NewProfilingOverlay() *ProfilingOverlay {
	return &ProfilingOverlay{lastFPSCheck: time.Now()}
}

func (o *ProfilingOverlay) tick(dt float64) {
	o.frames++
	o.lastFrame = time.Duration(dt * float64(time.Second))
	if time.Since(o.lastFPSCheck) >= time.Second {
		o.currentFPS = o.frames
		o.frames = 0
		o.lastFPSCheck = time.Now()
	}
}

// Lines returns the overlay text.
func (o *ProfilingOverlay) Lines() []string {
	lines := []string{
		fmt.Sprintf("FPS: %d", o.currentFPS),
		fmt.Sprintf("Frame: %.2fms", float64(o.lastFrame.Microseconds())/1000.0),
	}
	for _, s := range profiling.Top(5) {
		lines = append(lines, s.String())
	}
	return lines
}

func (o *ProfilingOverlay) Render(h *HUD, dt float64) {
	o.tick(dt)
	if !config.GetShowProfiler() {
		return
	}

	lines := o.Lines()
	step := h.fontRenderer.LineHeight()
	var width float32
	for _, l := range lines {
		w, _ := h.fontRenderer.Measure(l, 1)
		width = max(width, w)
	}

	h.uiRenderer.DrawFilledRect(4, 4, width+16, step*float32(len(lines))+12, mgl32.Vec3{0, 0, 0}, 0.6)
	h.fontRenderer.RenderLines(lines, 12, 8+step, step, 1, mgl32.Vec3{1, 1, 1})
}
