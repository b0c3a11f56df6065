package renderer

import (
	"github.com/lixenwraith/gman-shooter/render"
	"github.com/lixenwraith/gman-shooter/status"
)

// Register installs every layer on the orchestrator and returns the debug overlay for toggling
func Register(o *render.RenderOrchestrator, reg *status.Registry, mode render.ColorMode, debug bool) *DebugRenderer {
	o.Register(NewArenaRenderer(), render.PriorityBackground)
	o.Register(NewPropRenderer(), render.PriorityArena)
	o.Register(NewInventoryRenderer(), render.PriorityBody)
	o.Register(NewBossRenderer(), render.PriorityBoss)
	o.Register(NewHandRenderer(), render.PriorityHands)
	o.Register(NewMenuRenderer(), render.PriorityScreen)
	o.Register(NewCreditsRenderer(), render.PriorityScreen)
	o.Register(NewHUDRenderer(), render.PriorityUI)
	o.Register(NewStatusBarRenderer(reg, mode), render.PriorityOverlay)

	d := NewDebugRenderer(reg, debug)
	o.Register(d, render.PriorityDebug)
	return d
}
