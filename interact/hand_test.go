package interact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gman-shooter/event"
	"github.com/lixenwraith/gman-shooter/scene"
)

var testTargets = []Target{
	{ID: "floor", Kind: scene.KindFloor, Rect: Rect{0, 0, 80, 24}},
	{ID: "prop.0", Kind: scene.KindProp, Rect: Rect{10, 5, 3, 2}},
	{ID: "glass", Kind: scene.KindGlass, Rect: Rect{30, 2, 10, 8}},
	{ID: "slot.hip_right", Kind: scene.KindSlot, Item: scene.ItemMedkit, Rect: Rect{50, 20, 3, 1}},
	{ID: "slot.hip_left", Kind: scene.KindSlot, Item: scene.ItemGun, Rect: Rect{44, 20, 3, 1}},
	{ID: "slot.back", Kind: scene.KindSlot, Rect: Rect{47, 18, 3, 1}},
}

func TestRect_Contains(t *testing.T) {
	r := Rect{2, 3, 4, 2}
	assert.True(t, r.Contains(2, 3))
	assert.True(t, r.Contains(5, 4))
	assert.False(t, r.Contains(6, 4))
	assert.False(t, r.Contains(2, 5))
	assert.False(t, r.Contains(1, 3))
}

func TestHitTest_TopmostWins(t *testing.T) {
	tg, ok := HitTest(testTargets, 11, 6)
	require.True(t, ok)
	assert.Equal(t, "prop.0", tg.ID)

	tg, ok = HitTest(testTargets, 0, 0)
	require.True(t, ok)
	assert.Equal(t, "floor", tg.ID)

	_, ok = HitTest(testTargets, 100, 100)
	assert.False(t, ok)
}

func TestPair_HoverAndIdle(t *testing.T) {
	p := NewPair()
	assert.Equal(t, Idle, p.Hand(Left).State)
	assert.Equal(t, Right, p.Hand(Right).Side)

	p.Move(Left, 11, 6, testTargets)
	assert.Equal(t, Hover, p.Hand(Left).State)
	assert.True(t, p.Hovered("prop.0"))
	assert.False(t, p.Hand(Left).GloveActive())

	// Floor is not grabbable
	p.Move(Left, 1, 1, testTargets)
	assert.Equal(t, Idle, p.Hand(Left).State)
	assert.False(t, p.Hovered("prop.0"))
}

func TestPair_GrabGlassHitsGlass(t *testing.T) {
	p := NewPair()
	ev, ok := p.Press(Right, 32, 4, testTargets)
	require.True(t, ok)
	assert.Equal(t, event.EventHitGlass, ev.Type)
	assert.Equal(t, Grab, p.Hand(Right).State)
	assert.True(t, p.Hand(Right).GloveActive())

	// Grip holds while moving
	p.Move(Right, 1, 1, testTargets)
	assert.Equal(t, Grab, p.Hand(Right).State)
	assert.Equal(t, "glass", p.Hand(Right).Target)

	p.Release(Right, testTargets)
	assert.Equal(t, Idle, p.Hand(Right).State)
}

func TestPair_ReleaseFallsBackToHover(t *testing.T) {
	p := NewPair()
	_, ok := p.Press(Left, 11, 5, testTargets)
	assert.False(t, ok, "props grab without an action")
	assert.Equal(t, Grab, p.Hand(Left).State)

	p.Release(Left, testTargets)
	assert.Equal(t, Hover, p.Hand(Left).State)
	assert.Equal(t, "prop.0", p.Hand(Left).Target)
}

func TestPair_InventorySlots(t *testing.T) {
	p := NewPair()

	ev, ok := p.Press(Left, 51, 20, testTargets)
	require.True(t, ok)
	assert.Equal(t, event.EventHeal, ev.Type)

	ev, ok = p.Press(Right, 45, 20, testTargets)
	require.True(t, ok)
	assert.Equal(t, event.EventShoot, ev.Type)

	_, ok = p.Press(Right, 48, 18, testTargets)
	assert.False(t, ok)
	assert.Equal(t, Idle, p.Hand(Right).State, "empty slot is not grabbable")
}

func TestPair_Reset(t *testing.T) {
	p := NewPair()
	p.Press(Left, 32, 4, testTargets)
	p.Move(Right, 11, 6, testTargets)
	p.Reset()
	assert.Equal(t, Idle, p.Hand(Left).State)
	assert.Equal(t, Idle, p.Hand(Right).State)
	assert.False(t, p.Hovered("glass"))
}

func TestRect_Intersect(t *testing.T) {
	a := Rect{0, 0, 10, 5}
	assert.Equal(t, Rect{5, 2, 5, 3}, a.Intersect(Rect{5, 2, 20, 20}))
	assert.Equal(t, a, a.Intersect(Rect{-5, -5, 100, 100}))

	empty := a.Intersect(Rect{20, 20, 3, 3})
	assert.Zero(t, empty.W)
	assert.Zero(t, empty.H)
	assert.False(t, empty.Contains(20, 20))
}

func TestPair_HandsSnapshot(t *testing.T) {
	p := NewPair()
	p.Move(Left, 11, 6, testTargets)

	hands := p.Hands()
	assert.Equal(t, Left, hands[0].Side)
	assert.Equal(t, Right, hands[1].Side)
	assert.Equal(t, Hover, hands[0].State)

	hands[0].State = Grab
	assert.Equal(t, Hover, p.Hand(Left).State, "copies do not alias")
}
