package renderer

import (
	"fmt"

	"github.com/lixenwraith/gman-shooter/parameter"
	"github.com/lixenwraith/gman-shooter/render"
	"github.com/lixenwraith/gman-shooter/scene"
)

const healthBarWidth = 10

// HUDRenderer draws level, health, ammo and score, with the level banner under them
type HUDRenderer struct{}

func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

// Render implements SystemRenderer
func (r *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.View.Screen != scene.ScreenPlay {
		return
	}
	l := ctx.Layout
	if l.TooSmall() {
		buf.TextCentered(0, l.Height/2, l.Width, ctx.Text("status.too_small", render.MinWidth, render.MinHeight), render.RgbWarning, render.AttrBold)
		return
	}

	buf.Fill(l.HUD.X, l.HUD.Y, l.HUD.W, l.HUD.H, render.RgbPanel)
	s := ctx.Snapshot
	y := l.HUD.Y
	x := 1

	x += buf.Text(x, y, ctx.Text("hud.level", s.Level, parameter.MaxLevel), render.RgbAccent, render.AttrBold)
	x += separator(buf, x, y)

	x += buf.Text(x, y, "♥ ", render.RgbHealth, render.AttrNone)
	x += healthBar(buf, x, y, s.Health)
	x += buf.Text(x+1, y, ctx.Text("hud.health", s.Health), render.RgbWhite, render.AttrNone) + 1
	x += separator(buf, x, y)

	ammoFg := render.RgbWhite
	if s.Ammo == 0 {
		ammoFg = render.RgbHealth
	}
	x += buf.Text(x, y, "▮ ", render.RgbMuted, render.AttrNone)
	x += buf.Text(x, y, ctx.Text("hud.ammo", s.Ammo, parameter.MaxAmmo), ammoFg, render.AttrNone)
	x += separator(buf, x, y)

	x += buf.Text(x, y, "★ ", render.RgbScore, render.AttrNone)
	buf.Text(x, y, ctx.Text("hud.score", s.Score), render.RgbScore, render.AttrBold)

	banner := ctx.Text("banner.level", s.Level, parameter.MaxLevel)
	bannerFg := render.RgbAccent
	if ctx.View.FinalLevel {
		banner = ctx.Text("banner.final")
		bannerFg = render.RgbWarning
	}
	buf.TextCentered(l.HUD.X, y+1, l.HUD.W, banner, bannerFg, render.AttrBold)
}

func separator(buf *render.RenderBuffer, x, y int) int {
	return buf.Text(x, y, " │ ", render.RgbMuted, render.AttrNone)
}

// healthBar draws a proportional bar and returns its width
func healthBar(buf *render.RenderBuffer, x, y, health int) int {
	filled := health * healthBarWidth / parameter.MaxHealth
	if health > 0 && filled == 0 {
		filled = 1
	}
	for i := 0; i < healthBarWidth; i++ {
		if i < filled {
			buf.SetFgOnly(x+i, y, '█', render.RgbHealth, render.AttrNone)
		} else {
			buf.SetFgOnly(x+i, y, '░', render.RgbHealthDim, render.AttrNone)
		}
	}
	return healthBarWidth
}

// controlHint formats one footer control entry
func controlHint(key, label string) string {
	return fmt.Sprintf("[%s] %s", key, label)
}
