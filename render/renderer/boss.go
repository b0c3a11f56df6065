package renderer

import (
	"math"

	"github.com/lixenwraith/gman-shooter/animation"
	"github.com/lixenwraith/gman-shooter/interact"
	"github.com/lixenwraith/gman-shooter/render"
	"github.com/lixenwraith/gman-shooter/scene"
)

const glassAlpha = 0.35

var crackGlyphs = [...]rune{'╱', '╲', '╳'}

// BossRenderer draws the glass pane, its frame, the hidden character, cracks and the warning banner
type BossRenderer struct{}

func NewBossRenderer() *BossRenderer {
	return &BossRenderer{}
}

// Render implements SystemRenderer
func (r *BossRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !playable(ctx) || !ctx.View.BossVisible {
		return
	}
	l := ctx.Layout
	glass, ok := ctx.View.Find(scene.IDGlass)
	if !ok {
		return
	}
	pane := l.Footprint(glass).Intersect(l.Arena)

	if ch, ok := ctx.View.Find(scene.IDCharacter); ok {
		r.drawCharacter(ctx, buf, ch, pane)
	}

	tint := render.FromScene(glass.Color)
	if ctx.Hovered(glass.ID) {
		tint = tint.Scale(1.3)
	}
	for y := pane.Y; y < pane.Y+pane.H; y++ {
		for x := pane.X; x < pane.X+pane.W; x++ {
			buf.Set(x, y, 0, tint, tint, render.BlendAlpha, glassAlpha, buf.Get(x, y).Attrs)
		}
	}

	if frame, ok := ctx.View.Find(scene.IDFrame); ok {
		outer := interact.Rect{X: pane.X - 1, Y: pane.Y - 1, W: pane.W + 2, H: pane.H + 2}
		drawBox(buf, outer, render.FromScene(frame.Color).Max(render.RgbMuted))
	}

	// Cracks map onto the pane face-on, not through the floor projection
	for i, c := range ctx.View.Filter(scene.KindCrack) {
		fx := (c.Pos.X - glass.Pos.X + glass.Size.X/2) / glass.Size.X
		fy := (glass.Pos.Y + glass.Size.Y/2 - c.Pos.Y) / glass.Size.Y
		x := pane.X + int(fx*float32(pane.W))
		y := pane.Y + int(fy*float32(pane.H))
		w := max(1, int(math.Round(float64(c.Size.X/glass.Size.X)*float64(pane.W))))
		glyph := crackGlyphs[i%len(crackGlyphs)]
		for dx := 0; dx < w; dx++ {
			if pane.Contains(x+dx, y) {
				buf.SetFgOnly(x+dx, y, glyph, render.FromScene(c.Color), render.AttrBold)
			}
		}
	}

	if animation.BlinkOn(ctx.T) {
		msg := " " + ctx.Text("boss.warning") + " "
		y := l.Arena.Y
		buf.Fill(l.Arena.X, y, l.Arena.W, 1, render.RgbWarningBg)
		buf.TextCentered(l.Arena.X, y, l.Arena.W, msg, render.RgbWarning, render.AttrBold)
	}
}

func (r *BossRenderer) drawCharacter(ctx render.RenderContext, buf *render.RenderBuffer, ch scene.Entity, pane interact.Rect) {
	yaw, bob := animation.BossSway(ctx.T)
	pos := ch.Pos
	pos.X += yaw * 10
	pos.Y += bob * 10
	body := ctx.Layout.Footprint(scene.Entity{Pos: pos, Size: ch.Size})
	body = body.Intersect(pane)

	fillRect(buf, body, pane, '█', render.RgbViolet.Scale(0.5), render.FromScene(ch.Color))
	name := ctx.Text(ch.Label)
	buf.TextCentered(pane.X, body.Y, pane.W, name, render.RgbWhite, render.AttrBold)
}
