// Package interact tracks the two hand cursors and turns grabs into actions
package interact

import (
	"github.com/lixenwraith/gman-shooter/event"
	"github.com/lixenwraith/gman-shooter/scene"
)

// Side identifies a hand
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// State is a hand's interaction state
type State uint8

const (
	Idle State = iota
	Hover
	Grab
)

func (s State) String() string {
	switch s {
	case Hover:
		return "hover"
	case Grab:
		return "grab"
	default:
		return "idle"
	}
}

// Rect is a screen-space cell rectangle, X/Y inclusive, W/H exclusive
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersect clips r to o; disjoint rectangles yield a zero-size result
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Target is a hit-testable projection of a scene entity
type Target struct {
	ID   string
	Kind scene.Kind
	Item string
	Rect Rect
}

// HitTest returns the last target containing the cell; later targets are drawn on top
func HitTest(targets []Target, x, y int) (Target, bool) {
	for i := len(targets) - 1; i >= 0; i-- {
		if targets[i].Rect.Contains(x, y) {
			return targets[i], true
		}
	}
	return Target{}, false
}

// Hand is one cursor
type Hand struct {
	Side   Side
	State  State
	Target string
	X, Y   int
}

// GloveActive reports whether the gravity glove halo is shown
func (h Hand) GloveActive() bool {
	return h.State == Grab
}

// Pair holds both hands; the zero value has both idle
type Pair struct {
	hands [2]Hand
}

// NewPair returns idle hands
func NewPair() *Pair {
	p := &Pair{}
	p.hands[Left].Side = Left
	p.hands[Right].Side = Right
	return p
}

// Hand returns a copy of one hand
func (p *Pair) Hand(s Side) Hand {
	return p.hands[s&1]
}

// Hands returns copies of both hands, left first
func (p *Pair) Hands() [2]Hand {
	return p.hands
}

// Move updates a hand's position and hover target; a grabbing hand keeps its grip
func (p *Pair) Move(s Side, x, y int, targets []Target) {
	h := &p.hands[s&1]
	h.X, h.Y = x, y
	if h.State == Grab {
		return
	}
	if t, ok := HitTest(targets, x, y); ok && grabbable(t) {
		h.State = Hover
		h.Target = t.ID
		return
	}
	h.State = Idle
	h.Target = ""
}

// Press grabs whatever is under the hand and returns the action it triggers, if any
func (p *Pair) Press(s Side, x, y int, targets []Target) (event.GameEvent, bool) {
	h := &p.hands[s&1]
	h.X, h.Y = x, y

	t, ok := HitTest(targets, x, y)
	if !ok || !grabbable(t) {
		h.State = Idle
		h.Target = ""
		return event.GameEvent{}, false
	}
	h.State = Grab
	h.Target = t.ID
	return actionFor(t)
}

// Release drops the grip, falling back to hover when still over the target
func (p *Pair) Release(s Side, targets []Target) {
	h := &p.hands[s&1]
	if h.State != Grab {
		return
	}
	h.State = Idle
	h.Target = ""
	p.Move(s, h.X, h.Y, targets)
}

// Reset returns both hands to idle
func (p *Pair) Reset() {
	for i := range p.hands {
		p.hands[i].State = Idle
		p.hands[i].Target = ""
	}
}

// Hovered reports whether any hand hovers or grips the target
func (p *Pair) Hovered(id string) bool {
	for _, h := range p.hands {
		if h.State != Idle && h.Target == id {
			return true
		}
	}
	return false
}

func grabbable(t Target) bool {
	switch t.Kind {
	case scene.KindProp, scene.KindGlass:
		return true
	case scene.KindSlot:
		return t.Item != ""
	}
	return false
}

func actionFor(t Target) (event.GameEvent, bool) {
	switch {
	case t.Kind == scene.KindGlass:
		return event.GameEvent{Type: event.EventHitGlass}, true
	case t.Kind == scene.KindSlot && t.Item == scene.ItemMedkit:
		return event.GameEvent{Type: event.EventHeal}, true
	case t.Kind == scene.KindSlot && t.Item == scene.ItemGun:
		return event.GameEvent{Type: event.EventShoot}, true
	}
	return event.GameEvent{}, false
}
