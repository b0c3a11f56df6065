package renderer

import (
	"github.com/lixenwraith/gman-shooter/animation"
	"github.com/lixenwraith/gman-shooter/interact"
	"github.com/lixenwraith/gman-shooter/render"
)

// HandRenderer draws both hand cursors and the gravity glove halo
type HandRenderer struct{}

func NewHandRenderer() *HandRenderer {
	return &HandRenderer{}
}

var handGlyphs = [2][3]rune{
	interact.Left:  {'◐', '◖', '●'},
	interact.Right: {'◑', '◗', '●'},
}

// Render implements SystemRenderer
func (r *HandRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !playable(ctx) {
		return
	}
	for _, h := range ctx.Hands {
		fg := render.RgbMuted
		switch h.State {
		case interact.Hover:
			fg = render.RgbWhite
		case interact.Grab:
			fg = render.RgbAccent
		}

		if h.GloveActive() {
			r.drawHalo(ctx, buf, h)
		}
		buf.SetFgOnly(h.X, h.Y, handGlyphs[h.Side&1][h.State], fg, render.AttrBold)
	}
}

// drawHalo lights the cells around a gripping hand; the pulse scales the reach
func (r *HandRenderer) drawHalo(ctx render.RenderContext, buf *render.RenderBuffer, h interact.Hand) {
	reach := int(animation.GlovePulse(ctx.T) + 0.5)
	for dy := -reach; dy <= reach; dy++ {
		for dx := -reach * 2; dx <= reach*2; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			x, y := h.X+dx, h.Y+dy
			if !ctx.Layout.Arena.Contains(x, y) && !ctx.Layout.Inventory.Contains(x, y) {
				continue
			}
			buf.Set(x, y, 0, render.RgbAccent, render.RgbAccent.Scale(0.4), render.BlendMax, 1, render.AttrNone)
		}
	}
}
