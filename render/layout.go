package render

import (
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/gman-shooter/interact"
	"github.com/lixenwraith/gman-shooter/scene"
)

// Fixed row budgets
const (
	HUDHeight       = 2
	InventoryHeight = 3
	FooterHeight    = 1

	MinWidth  = 40
	MinHeight = HUDHeight + InventoryHeight + FooterHeight + 6
)

// World window shown by the arena projection
const (
	worldMinX  = -7.0
	worldMaxX  = 7.0
	worldMinD  = -3.0
	worldMaxD  = 12.5
	heightLift = 0.5
)

// Layout splits the screen into HUD, arena, inventory panel and footer
type Layout struct {
	Width, Height int

	HUD       interact.Rect
	Arena     interact.Rect
	Inventory interact.Rect
	Footer    interact.Rect
}

// ComputeLayout partitions a screen of w x h cells
func ComputeLayout(w, h int) Layout {
	arenaH := max(h-HUDHeight-InventoryHeight-FooterHeight, 0)
	return Layout{
		Width:     w,
		Height:    h,
		HUD:       interact.Rect{X: 0, Y: 0, W: w, H: HUDHeight},
		Arena:     interact.Rect{X: 0, Y: HUDHeight, W: w, H: arenaH},
		Inventory: interact.Rect{X: 0, Y: HUDHeight + arenaH, W: w, H: InventoryHeight},
		Footer:    interact.Rect{X: 0, Y: h - FooterHeight, W: w, H: FooterHeight},
	}
}

// TooSmall reports whether the screen cannot hold the play view
func (l Layout) TooSmall() bool {
	return l.Width < MinWidth || l.Height < MinHeight
}

func (l Layout) colsPerUnit() float64 {
	return float64(l.Arena.W) / (worldMaxX - worldMinX)
}

func (l Layout) rowsPerUnit() float64 {
	return float64(l.Arena.H) / (worldMaxD - worldMinD)
}

// Project maps a world position to an arena cell; depth grows upward, height lifts
func (l Layout) Project(v scene.Vec3) (int, int) {
	d := float64(v.Z) + float64(v.Y)*heightLift
	x := l.Arena.X + int(math.Floor((float64(v.X)-worldMinX)*l.colsPerUnit()))
	y := l.Arena.Y + int(math.Floor((worldMaxD-d)*l.rowsPerUnit()))
	return x, y
}

// Footprint returns the screen rectangle an entity covers in the arena
func (l Layout) Footprint(e scene.Entity) interact.Rect {
	cx, cy := l.Project(e.Pos)
	w := max(1, int(math.Round(float64(e.Size.X)*l.colsPerUnit())))
	depth := math.Max(float64(e.Size.Z), float64(e.Size.Y)*heightLift)
	h := max(1, int(math.Round(depth*l.rowsPerUnit())))
	return interact.Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// SlotRects lays the body slots out left to right in the inventory panel
func (l Layout) SlotRects() [scene.SlotCount]interact.Rect {
	var out [scene.SlotCount]interact.Rect
	cell := max(l.Inventory.W/scene.SlotCount, 1)
	for i := range out {
		out[i] = interact.Rect{X: l.Inventory.X + i*cell, Y: l.Inventory.Y, W: cell, H: l.Inventory.H}
	}
	return out
}

// inventoryOrder is the panel order: chest L, hip L, back, hip R, chest R
var inventoryOrder = [scene.SlotCount]scene.Slot{
	scene.SlotChestLeft, scene.SlotHipLeft, scene.SlotBack, scene.SlotHipRight, scene.SlotChestRight,
}

// InventoryOrder returns the slot shown at panel position i
func InventoryOrder(i int) scene.Slot {
	return inventoryOrder[i]
}

// Targets returns hit-testable rectangles for everything a hand can grab, topmost last
func Targets(v scene.View, l Layout) []interact.Target {
	if v.Screen != scene.ScreenPlay {
		return nil
	}
	var out []interact.Target
	for _, e := range v.Entities {
		switch e.Kind {
		case scene.KindProp, scene.KindGlass:
			out = append(out, interact.Target{ID: e.ID, Kind: e.Kind, Rect: l.Footprint(e).Intersect(l.Arena)})
		}
	}
	rects := l.SlotRects()
	for i, r := range rects {
		e, ok := v.Find(scene.SlotID(inventoryOrder[i]))
		if !ok {
			continue
		}
		out = append(out, interact.Target{ID: e.ID, Kind: scene.KindSlot, Item: e.Item, Rect: r})
	}
	return out
}

func isWide(r rune) bool {
	return runewidth.RuneWidth(r) == 2
}
