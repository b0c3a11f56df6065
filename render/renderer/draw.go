// Package renderer holds the layers composed by the render orchestrator
package renderer

import (
	"github.com/lixenwraith/gman-shooter/interact"
	"github.com/lixenwraith/gman-shooter/render"
	"github.com/lixenwraith/gman-shooter/scene"
)

// Box-drawing runes
const (
	boxH  = '─'
	boxV  = '│'
	boxTL = '┌'
	boxTR = '┐'
	boxBL = '└'
	boxBR = '┘'
)

// playable reports whether the play view should be drawn this frame
func playable(ctx render.RenderContext) bool {
	return ctx.View.Screen == scene.ScreenPlay && !ctx.Layout.TooSmall()
}

// drawBox outlines r keeping the interior
func drawBox(buf *render.RenderBuffer, r interact.Rect, fg render.RGB) {
	if r.W < 2 || r.H < 2 {
		return
	}
	x1, y1 := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < x1; x++ {
		buf.SetFgOnly(x, r.Y, boxH, fg, render.AttrNone)
		buf.SetFgOnly(x, y1, boxH, fg, render.AttrNone)
	}
	for y := r.Y + 1; y < y1; y++ {
		buf.SetFgOnly(r.X, y, boxV, fg, render.AttrNone)
		buf.SetFgOnly(x1, y, boxV, fg, render.AttrNone)
	}
	buf.SetFgOnly(r.X, r.Y, boxTL, fg, render.AttrNone)
	buf.SetFgOnly(x1, r.Y, boxTR, fg, render.AttrNone)
	buf.SetFgOnly(r.X, y1, boxBL, fg, render.AttrNone)
	buf.SetFgOnly(x1, y1, boxBR, fg, render.AttrNone)
}

// fillRect paints r with a glyph and colors, clipped to clip
func fillRect(buf *render.RenderBuffer, r, clip interact.Rect, ch rune, fg, bg render.RGB) {
	r = r.Intersect(clip)
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			buf.SetWithBg(x, y, ch, fg, bg)
		}
	}
}

// shapeGlyph returns the fill rune for a prop shape
func shapeGlyph(s scene.Shape) rune {
	switch s {
	case scene.ShapeSphere:
		return '●'
	case scene.ShapeCylinder:
		return '▮'
	default:
		return '█'
	}
}
