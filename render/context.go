package render

import (
	"github.com/lixenwraith/gman-shooter/game"
	"github.com/lixenwraith/gman-shooter/interact"
	"github.com/lixenwraith/gman-shooter/locale"
	"github.com/lixenwraith/gman-shooter/scene"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Session and its composed scene
	Snapshot game.Snapshot
	View     scene.View

	// Elapsed seconds for decorative motion
	T float32

	// Hand cursors (screen coordinates)
	Hands [2]interact.Hand

	// Localized strings; nil falls back to message keys
	Printer *locale.Printer

	Layout Layout

	AudioMuted     bool
	AudioAvailable bool
}

// NewRenderContext composes the view for snap and computes the layout for the screen size
func NewRenderContext(snap game.Snapshot, t float32, hands [2]interact.Hand, p *locale.Printer, width, height int) RenderContext {
	return RenderContext{
		Snapshot: snap,
		View:     scene.Compose(snap),
		T:        t,
		Hands:    hands,
		Printer:  p,
		Layout:   ComputeLayout(width, height),
	}
}

// Text resolves a localized message
func (rc *RenderContext) Text(key string, args ...any) string {
	if rc.Printer == nil {
		return key
	}
	return rc.Printer.T(key, args...)
}

// Hovered reports whether either hand is over the entity
func (rc *RenderContext) Hovered(id string) bool {
	for _, h := range rc.Hands {
		if h.State != interact.Idle && h.Target == id {
			return true
		}
	}
	return false
}

// Grabbed reports whether either hand holds the entity
func (rc *RenderContext) Grabbed(id string) bool {
	for _, h := range rc.Hands {
		if h.State == interact.Grab && h.Target == id {
			return true
		}
	}
	return false
}
