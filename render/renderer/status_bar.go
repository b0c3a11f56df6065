package renderer

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/gman-shooter/render"
	"github.com/lixenwraith/gman-shooter/scene"
	"github.com/lixenwraith/gman-shooter/status"
)

const audioGlyph = " ♫ "

// StatusBarRenderer draws the status bar at the bottom
type StatusBarRenderer struct {
	// Color mode (persist throughout runtime)
	colorMode render.ColorMode

	// Frame and session metrics read each frame
	stats *status.Registry
}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer(reg *status.Registry, mode render.ColorMode) *StatusBarRenderer {
	return &StatusBarRenderer{
		colorMode: mode,
		stats:     reg,
	}
}

type statusItem struct {
	text string
	fg   render.RGB
	bg   render.RGB
}

// Render implements SystemRenderer
func (r *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	statusY := buf.Height() - 1
	width := buf.Width()
	if statusY < 0 {
		return
	}

	for x := 0; x < width; x++ {
		buf.SetWithBg(x, statusY, ' ', render.RgbMuted, render.RgbPanel)
	}

	x := 0
	put := func(s string, fg, bg render.RGB) bool {
		for _, ch := range s {
			if x >= width {
				return false
			}
			buf.SetWithBg(x, statusY, ch, fg, bg)
			x += max(runewidth.RuneWidth(ch), 1)
		}
		return true
	}

	// Audio indicator, always visible
	switch {
	case !ctx.AudioAvailable:
		put(audioGlyph+ctx.Text("status.silent")+" ", render.RgbBlack, render.RgbDisabled)
	case ctx.AudioMuted:
		put(audioGlyph+ctx.Text("status.muted")+" ", render.RgbBlack, render.RgbHealth)
	default:
		put(audioGlyph, render.RgbBlack, render.RgbAccent)
	}

	phase := ctx.Snapshot.Phase.String()
	if !put(" "+ctx.Text("phase."+phase)+" ", render.RgbBlack, phaseColor(ctx.View.Screen, ctx.View.BossVisible)) {
		return
	}
	x++

	if ctx.View.Screen == scene.ScreenPlay {
		shootFg := render.RgbWhite
		if !ctx.View.ShootEnabled {
			shootFg = render.RgbDisabled
		}
		hints := []statusItem{
			{controlHint("Space", ctx.Text("hud.shoot")), shootFg, render.RgbPanel},
			{controlHint("R", ctx.Text("hud.reload")), render.RgbWhite, render.RgbPanel},
			{controlHint("H", ctx.Text("hud.heal")), render.RgbWhite, render.RgbPanel},
			{controlHint("Esc", ctx.Text("hud.menu")), render.RgbWhite, render.RgbPanel},
		}
		for _, h := range hints {
			if !put(h.text+"  ", h.fg, h.bg) {
				return
			}
		}
	}
	leftEndX := x

	// --- RIGHT SIDE METRICS ---
	// Items are dropped from the end (lowest priority) when space is limited
	var rightItems []statusItem
	if id := r.stats.Label(status.SessionID); id != "" {
		if len(id) > 8 {
			id = id[:8]
		}
		rightItems = append(rightItems, statusItem{text: " " + id + " ", fg: render.RgbMuted, bg: render.RgbBackground})
	}
	rightItems = append(rightItems, statusItem{
		text: fmt.Sprintf(" F: %d ", r.stats.Count(status.Frames)),
		fg:   render.RgbBlack,
		bg:   render.RgbMuted,
	})

	var colorModeStr string
	if r.colorMode == render.ColorModeTrueColor {
		colorModeStr = " TC "
	} else {
		colorModeStr = " 256 "
	}
	rightItems = append(rightItems, statusItem{text: colorModeStr, fg: render.RgbBlack, bg: render.RgbViolet})

	availableWidth := width - leftEndX
	totalWidth := 0
	fitCount := 0
	for _, item := range rightItems {
		itemWidth := runewidth.StringWidth(item.text)
		if totalWidth+itemWidth > availableWidth {
			break
		}
		totalWidth += itemWidth
		fitCount++
	}

	startX := width - totalWidth
	for i := 0; i < fitCount; i++ {
		item := rightItems[i]
		for _, ch := range item.text {
			buf.SetWithBg(startX, statusY, ch, item.fg, item.bg)
			startX++
		}
	}
}

// phaseColor returns the phase tag background
func phaseColor(screen scene.Screen, boss bool) render.RGB {
	switch {
	case boss:
		return render.RgbWarning
	case screen == scene.ScreenPlay:
		return render.RgbAccent
	case screen == scene.ScreenCredits:
		return render.RgbViolet
	default:
		return render.RgbMuted
	}
}
