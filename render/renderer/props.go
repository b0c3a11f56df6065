package renderer

import (
	"github.com/lixenwraith/gman-shooter/animation"
	"github.com/lixenwraith/gman-shooter/render"
	"github.com/lixenwraith/gman-shooter/scene"
)

// PropRenderer draws the physics props and their hover/grab highlight
type PropRenderer struct{}

func NewPropRenderer() *PropRenderer {
	return &PropRenderer{}
}

// Render implements SystemRenderer
func (r *PropRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !playable(ctx) {
		return
	}
	for _, e := range ctx.View.Filter(scene.KindProp) {
		rect := ctx.Layout.Footprint(e)
		fg := render.FromScene(e.Color)
		if e.Color == scene.ColorDark {
			fg = fg.Max(render.RgbMuted.Scale(0.6))
		}
		bg := render.RgbBackground

		switch {
		case ctx.Grabbed(e.ID):
			fg = fg.Max(render.RgbAccent)
			bg = render.RgbPanel
		case ctx.Hovered(e.ID):
			// Wobble alternates the lit side of the footprint
			if animation.HoverWobble(ctx.T) >= 0 {
				rect.X++
			} else {
				rect.X--
			}
			fg = fg.Scale(1.4)
		}
		fillRect(buf, rect, ctx.Layout.Arena, shapeGlyph(e.Shape), fg, bg)
	}
}
