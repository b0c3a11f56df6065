package renderer

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/gman-shooter/interact"
	"github.com/lixenwraith/gman-shooter/render"
	"github.com/lixenwraith/gman-shooter/status"
)

// DebugRenderer draws the diagnostics overlay, toggled at runtime
type DebugRenderer struct {
	visible atomic.Bool
	stats   *status.Registry
}

// NewDebugRenderer creates the overlay; it starts hidden unless visible is set
func NewDebugRenderer(reg *status.Registry, visible bool) *DebugRenderer {
	r := &DebugRenderer{stats: reg}
	r.visible.Store(visible)
	return r
}

// IsVisible implements VisibilityToggle
func (r *DebugRenderer) IsVisible() bool {
	return r.visible.Load()
}

// Toggle flips visibility and returns the new state
func (r *DebugRenderer) Toggle() bool {
	v := !r.visible.Load()
	r.visible.Store(v)
	return v
}

// Lines returns the overlay text: labels first, then every counter
func (r *DebugRenderer) Lines() []string {
	var lines []string
	for _, l := range [...]status.Label{status.Phase, status.SessionID, status.LastEvent} {
		lines = append(lines, fmt.Sprintf("%-13s %s", l, r.stats.Label(l)))
	}
	r.stats.RangeCounters(func(c status.Counter, v int64) {
		lines = append(lines, fmt.Sprintf("%-13s %d", c, v))
	})
	return lines
}

// Render implements SystemRenderer
func (r *DebugRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	lines := r.Lines()
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	box := interact.Rect{W: width + 4, H: len(lines) + 2}
	box.X = buf.Width() - box.W - 1
	box.Y = 1
	if box.X < 0 || box.Y+box.H > buf.Height() {
		return
	}

	fillRect(buf, box, box, ' ', render.RgbWhite, render.RgbPanel)
	drawBox(buf, box, render.RgbViolet)
	buf.Text(box.X+2, box.Y, " "+ctx.Text("debug.title")+" ", render.RgbViolet, render.AttrBold)
	for i, l := range lines {
		buf.Text(box.X+2, box.Y+1+i, l, render.RgbWhite, render.AttrNone)
	}
}
