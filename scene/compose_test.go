package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gman-shooter/game"
)

func snapshot(phase game.Phase, level, cracks, ammo int) game.Snapshot {
	st := game.NewSessionState()
	st.Phase = phase
	st.Level = level
	st.CrackCount = cracks
	st.Ammo = ammo
	return game.Snapshot{SessionState: st, SessionID: "test-session"}
}

func TestCompose_MenuAndCreditsHaveNoEntities(t *testing.T) {
	v := Compose(snapshot(game.PhaseMenu, 1, 0, 30))
	assert.Equal(t, ScreenMenu, v.Screen)
	assert.Empty(t, v.Entities)

	v = Compose(snapshot(game.PhaseCredits, 5, 3, 30))
	assert.Equal(t, ScreenCredits, v.Screen)
	assert.Empty(t, v.Entities)
	assert.False(t, v.BossVisible)
}

func TestCompose_PlayingArena(t *testing.T) {
	v := Compose(snapshot(game.PhasePlaying, 3, 0, 12))

	assert.Equal(t, ScreenPlay, v.Screen)
	assert.Equal(t, 3, v.Level)
	assert.False(t, v.FinalLevel)
	assert.False(t, v.BossVisible)
	assert.True(t, v.ShootEnabled)

	assert.Len(t, v.Filter(KindProp), 5)
	assert.Len(t, v.Filter(KindSlot), SlotCount)
	assert.Len(t, v.Filter(KindHand), 2)
	assert.Empty(t, v.Filter(KindGlass))
	assert.Empty(t, v.Filter(KindCharacter))

	for _, id := range []string{IDFloor, IDGrid, IDWall, IDBody} {
		_, ok := v.Find(id)
		assert.True(t, ok, id)
	}
}

func TestCompose_InventoryItems(t *testing.T) {
	v := Compose(snapshot(game.PhasePlaying, 1, 0, 30))

	gun, ok := v.Find(SlotID(SlotHipLeft))
	require.True(t, ok)
	assert.Equal(t, ItemGun, gun.Item)
	assert.Equal(t, ColorAccent, gun.Color)

	med, ok := v.Find(SlotID(SlotHipRight))
	require.True(t, ok)
	assert.Equal(t, ItemMedkit, med.Item)

	back, ok := v.Find(SlotID(SlotBack))
	require.True(t, ok)
	assert.Empty(t, back.Item)
	assert.Equal(t, ColorDark, back.Color)
}

func TestCompose_ShootDisabledWhenEmpty(t *testing.T) {
	v := Compose(snapshot(game.PhasePlaying, 2, 0, 0))
	assert.False(t, v.ShootEnabled)
}

func TestCompose_BossEncounter(t *testing.T) {
	v := Compose(snapshot(game.PhaseBossEncounter, 5, 0, 30))

	assert.True(t, v.BossVisible)
	assert.True(t, v.FinalLevel)
	assert.Len(t, v.Filter(KindGlass), 1)
	assert.Len(t, v.Filter(KindFrame), 1)
	assert.Len(t, v.Filter(KindCharacter), 1)
	assert.Empty(t, v.Filter(KindCrack))

	glass, _ := v.Find(IDGlass)
	assert.Equal(t, GlassOrigin, glass.Pos)
}

func TestCompose_CracksScaleWithHits(t *testing.T) {
	for hits := 1; hits <= 2; hits++ {
		v := Compose(snapshot(game.PhaseBossEncounter, 5, hits, 30))
		assert.Len(t, v.Filter(KindCrack), hits*3)
	}
}

func TestCracks_Deterministic(t *testing.T) {
	a := Cracks("seed", 2)
	b := Cracks("seed", 2)
	assert.Equal(t, a, b)

	// Existing cracks keep their place as more appear
	c := Cracks("seed", 1)
	assert.Equal(t, a[:3], c)

	assert.Nil(t, Cracks("seed", 0))
	assert.Nil(t, Cracks("seed", -1))
}

func TestCracks_StayOnGlass(t *testing.T) {
	for _, cr := range Cracks("bounds", 3) {
		assert.InDelta(t, GlassOrigin.X, cr.Pos.X, 1.25)
		assert.InDelta(t, GlassOrigin.Y, cr.Pos.Y, 1.75)
		assert.GreaterOrEqual(t, cr.Size.X, float32(0.2))
		assert.Less(t, cr.Size.X, float32(0.7))
	}
}

func TestCompose_Pure(t *testing.T) {
	s := snapshot(game.PhaseBossEncounter, 5, 2, 7)
	assert.Equal(t, Compose(s), Compose(s))
}
