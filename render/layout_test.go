package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gman-shooter/game"
	"github.com/lixenwraith/gman-shooter/interact"
	"github.com/lixenwraith/gman-shooter/scene"
)

func playSnapshot(phase game.Phase) game.Snapshot {
	s := game.NewSessionState()
	s.Phase = phase
	return game.Snapshot{SessionState: s, SessionID: "layout-test"}
}

func TestComputeLayout_Partitions(t *testing.T) {
	l := ComputeLayout(80, 24)

	assert.Equal(t, interact.Rect{X: 0, Y: 0, W: 80, H: HUDHeight}, l.HUD)
	assert.Equal(t, HUDHeight, l.Arena.Y)
	assert.Equal(t, 24-HUDHeight-InventoryHeight-FooterHeight, l.Arena.H)
	assert.Equal(t, l.Arena.Y+l.Arena.H, l.Inventory.Y)
	assert.Equal(t, 23, l.Footer.Y)
	assert.False(t, l.TooSmall())

	assert.True(t, ComputeLayout(20, 24).TooSmall())
	assert.True(t, ComputeLayout(80, 5).TooSmall())
	assert.GreaterOrEqual(t, ComputeLayout(80, 2).Arena.H, 0)
}

func TestProject_DepthGrowsUpward(t *testing.T) {
	l := ComputeLayout(140, 40)

	xl, _ := l.Project(scene.Vec3{X: -5})
	xr, _ := l.Project(scene.Vec3{X: 5})
	assert.Less(t, xl, xr)

	_, near := l.Project(scene.Vec3{Z: -2})
	_, far := l.Project(scene.Vec3{Z: 10})
	assert.Greater(t, near, far)

	_, low := l.Project(scene.Vec3{Z: 3})
	_, high := l.Project(scene.Vec3{Y: 2, Z: 3})
	assert.Greater(t, low, high, "height lifts toward the top")

	x, y := l.Project(scene.Vec3{X: 0, Z: 4})
	assert.True(t, l.Arena.Contains(x, y))
}

func TestFootprint_MinimumOneCell(t *testing.T) {
	l := ComputeLayout(80, 24)
	r := l.Footprint(scene.Entity{Size: scene.Vec3{X: 0.01, Y: 0.01, Z: 0.01}})
	assert.Equal(t, 1, r.W)
	assert.Equal(t, 1, r.H)
}

func TestTargets_Play(t *testing.T) {
	l := ComputeLayout(120, 36)
	v := scene.Compose(playSnapshot(game.PhasePlaying))

	targets := Targets(v, l)
	var props, slots int
	for _, tg := range targets {
		switch tg.Kind {
		case scene.KindProp:
			props++
			assert.Positive(t, tg.Rect.W)
		case scene.KindSlot:
			slots++
			assert.True(t, l.Inventory.Contains(tg.Rect.X, tg.Rect.Y))
		case scene.KindGlass:
			t.Fatalf("glass targetable outside boss encounter")
		}
	}
	assert.Equal(t, 5, props)
	assert.Equal(t, scene.SlotCount, slots)
}

func TestTargets_InventoryGrabMapsToItem(t *testing.T) {
	l := ComputeLayout(120, 36)
	v := scene.Compose(playSnapshot(game.PhasePlaying))
	targets := Targets(v, l)

	rects := l.SlotRects()
	for i, r := range rects {
		tg, ok := interact.HitTest(targets, r.X+1, r.Y+1)
		require.True(t, ok)
		assert.Equal(t, scene.SlotID(InventoryOrder(i)), tg.ID)
	}

	gun, _ := interact.HitTest(targets, rects[1].X+1, rects[1].Y+1)
	assert.Equal(t, scene.ItemGun, gun.Item)
	med, _ := interact.HitTest(targets, rects[3].X+1, rects[3].Y+1)
	assert.Equal(t, scene.ItemMedkit, med.Item)
}

func TestTargets_BossGlass(t *testing.T) {
	l := ComputeLayout(120, 36)
	v := scene.Compose(playSnapshot(game.PhaseBossEncounter))

	var glass *interact.Target
	targets := Targets(v, l)
	for i := range targets {
		if targets[i].Kind == scene.KindGlass {
			glass = &targets[i]
		}
	}
	require.NotNil(t, glass)
	assert.Positive(t, glass.Rect.W)
	assert.True(t, l.Arena.Contains(glass.Rect.X, glass.Rect.Y))
}

func TestTargets_NoneOutsidePlay(t *testing.T) {
	l := ComputeLayout(80, 24)
	assert.Empty(t, Targets(scene.Compose(playSnapshot(game.PhaseMenu)), l))
	assert.Empty(t, Targets(scene.Compose(playSnapshot(game.PhaseCredits)), l))
}
