package renderer

import (
	"github.com/lixenwraith/gman-shooter/render"
	"github.com/lixenwraith/gman-shooter/scene"
)

var creditLines = [...]string{"credits.engine", "credits.audio", "credits.developer"}

// CreditsRenderer draws the mission complete screen
type CreditsRenderer struct{}

func NewCreditsRenderer() *CreditsRenderer {
	return &CreditsRenderer{}
}

// Render implements SystemRenderer
func (r *CreditsRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.View.Screen != scene.ScreenCredits {
		return
	}
	w, h := buf.Width(), buf.Height()
	buf.Fill(0, 0, w, h, render.RgbBackground)

	rows := 4 + 2 + len(creditLines) + 4
	y := max((h-rows)/2, 0)

	buf.TextCentered(0, y, w, ctx.Text("credits.title"), render.RgbAccent, render.AttrBold)
	buf.TextCentered(0, y+1, w, ctx.Text("credits.hired"), render.RgbWhite, render.AttrNone)
	buf.TextCentered(0, y+2, w, ctx.Text("credits.welcome"), render.RgbMuted, render.AttrNone)
	y += 4

	buf.TextCentered(0, y, w, ctx.Text("credits.heading"), render.RgbWhite, render.AttrBold)
	y += 2
	for _, k := range creditLines {
		buf.TextCentered(0, y, w, ctx.Text(k), render.RgbMuted, render.AttrNone)
		y++
	}
	y++
	buf.TextCentered(0, y, w, ctx.Text("credits.thanks"), render.RgbAccent, render.AttrNone)
	buf.TextCentered(0, y+2, w, ctx.Text("credits.back"), render.RgbWhite, render.AttrBold)
}
