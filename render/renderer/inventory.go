package renderer

import (
	"github.com/lixenwraith/gman-shooter/render"
	"github.com/lixenwraith/gman-shooter/scene"
)

// InventoryRenderer draws the player body in the arena and the five body slots in the panel below it
type InventoryRenderer struct{}

func NewInventoryRenderer() *InventoryRenderer {
	return &InventoryRenderer{}
}

func itemGlyph(item string) rune {
	switch item {
	case scene.ItemGun:
		return '╤'
	case scene.ItemMedkit:
		return '✚'
	default:
		return '·'
	}
}

// Render implements SystemRenderer
func (r *InventoryRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !playable(ctx) {
		return
	}

	if body, ok := ctx.View.Find(scene.IDBody); ok {
		fillRect(buf, ctx.Layout.Footprint(body), ctx.Layout.Arena, '▒', render.RgbMuted, render.FromScene(body.Color))
	}

	inv := ctx.Layout.Inventory
	buf.Fill(inv.X, inv.Y, inv.W, inv.H, render.RgbPanel)

	rects := ctx.Layout.SlotRects()
	for i, rect := range rects {
		e, ok := ctx.View.Find(scene.SlotID(render.InventoryOrder(i)))
		if !ok {
			continue
		}

		border := render.RgbMuted.Scale(0.6)
		fg := render.RgbMuted
		switch {
		case ctx.Grabbed(e.ID):
			border, fg = render.RgbWhite, render.RgbWhite
		case ctx.Hovered(e.ID):
			border, fg = render.RgbAccent, render.RgbAccent
		case e.Item != "":
			fg = render.FromScene(e.Color)
		}
		if e.Item == scene.ItemGun && !ctx.View.ShootEnabled {
			fg = render.RgbDisabled
		}

		drawBox(buf, rect, border)
		label := string(itemGlyph(e.Item)) + " " + ctx.Text(e.Label)
		buf.TextCentered(rect.X+1, rect.Y+rect.H/2, rect.W-2, label, fg, render.AttrNone)
	}
}
