package renderer

import (
	"github.com/lixenwraith/gman-shooter/render"
	"github.com/lixenwraith/gman-shooter/scene"
)

var menuFeatures = [...]string{"gloves", "inventory", "physics", "campaign"}

// MenuRenderer draws the title screen
type MenuRenderer struct{}

func NewMenuRenderer() *MenuRenderer {
	return &MenuRenderer{}
}

// Render implements SystemRenderer
func (r *MenuRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.View.Screen != scene.ScreenMenu {
		return
	}
	w, h := buf.Width(), buf.Height()
	buf.Fill(0, 0, w, h, render.RgbBackground)

	// Title block, features, actions, hints
	rows := 4 + 2 + len(menuFeatures)*2 + 4 + 3
	y := max((h-rows)/2, 0)

	buf.TextCentered(0, y, w, ctx.Text("menu.title"), render.RgbAccent, render.AttrBold)
	buf.TextCentered(0, y+1, w, ctx.Text("menu.subtitle"), render.RgbMuted, render.AttrNone)
	buf.TextCentered(0, y+2, w, ctx.Text("menu.inspired"), render.RgbMuted, render.AttrDim)
	y += 4

	buf.TextCentered(0, y, w, ctx.Text("menu.features"), render.RgbWhite, render.AttrBold)
	y += 2
	for _, f := range menuFeatures {
		buf.TextCentered(0, y, w, "◆ "+ctx.Text("feature."+f+".title"), render.RgbAccent, render.AttrNone)
		buf.TextCentered(0, y+1, w, ctx.Text("feature."+f+".desc"), render.RgbMuted, render.AttrNone)
		y += 2
	}
	y++

	buf.TextCentered(0, y, w, ctx.Text("menu.start"), render.RgbWhite, render.AttrBold)
	y++
	if ctx.Snapshot.CanResume {
		buf.TextCentered(0, y, w, ctx.Text("menu.resume"), render.RgbAccent, render.AttrBold)
		y++
	}
	buf.TextCentered(0, y, w, ctx.Text("menu.quit"), render.RgbMuted, render.AttrNone)
	y += 2

	for _, k := range [...]string{"menu.hint.shoot", "menu.hint.gloves", "menu.hint.keys"} {
		buf.TextCentered(0, y, w, ctx.Text(k), render.RgbMuted, render.AttrDim)
		y++
	}
}
