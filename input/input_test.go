package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gman-shooter/event"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestDefaultKeyTable_Lookup(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		ev   *tcell.EventKey
		want IntentType
	}{
		{runeKey(' '), IntentShoot},
		{runeKey('r'), IntentReload},
		{runeKey('R'), IntentReload},
		{runeKey('h'), IntentHeal},
		{runeKey('g'), IntentHitGlass},
		{runeKey('c'), IntentResume},
		{runeKey('m'), IntentMenu},
		{runeKey('q'), IntentQuit},
		{runeKey('z'), IntentNone},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), IntentConfirm},
		{tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone), IntentMenu},
		{tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), IntentToggleDebug},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), IntentToggleMute},
		{tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), IntentNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, kt.Lookup(tt.ev), tt.ev.Name())
	}
}

func TestToEvent(t *testing.T) {
	et, ok := ToEvent(IntentShoot)
	assert.True(t, ok)
	assert.Equal(t, event.EventShoot, et)

	et, ok = ToEvent(IntentHitGlass)
	assert.True(t, ok)
	assert.Equal(t, event.EventHitGlass, et)

	_, ok = ToEvent(IntentQuit)
	assert.False(t, ok)
	_, ok = ToEvent(IntentConfirm)
	assert.False(t, ok)
}

func TestActionNames(t *testing.T) {
	it, ok := ActionIntent("hit_glass")
	assert.True(t, ok)
	assert.Equal(t, IntentHitGlass, it)
	assert.Equal(t, "reload", ActionName(IntentReload))
	assert.Empty(t, ActionName(IntentHandMove))
}

func TestLoadKeyConfig(t *testing.T) {
	data := []byte(`
[keys]
f = "shoot"
space = "none"
x = "heal"

[special]
F2 = "toggle_debug"
"Ctrl-R" = "reload"
`)
	override, err := LoadKeyConfig(data)
	require.NoError(t, err)
	assert.Equal(t, IntentShoot, override.Runes['f'])
	assert.Equal(t, IntentNone, override.Runes[' '])
	assert.Equal(t, IntentToggleDebug, override.Keys[tcell.KeyF2])
	assert.Equal(t, IntentReload, override.Keys[tcell.KeyCtrlR])

	base := DefaultKeyTable()
	merged := MergeKeyTable(base, override)

	assert.Equal(t, IntentShoot, merged.Lookup(runeKey('f')))
	assert.Equal(t, IntentNone, merged.Lookup(runeKey(' ')), "unbound by none")
	assert.Equal(t, IntentHeal, merged.Lookup(runeKey('x')))
	assert.Equal(t, IntentReload, merged.Lookup(runeKey('r')), "defaults survive")

	// Base is untouched
	assert.Equal(t, IntentShoot, base.Lookup(runeKey(' ')))
}

func TestLoadKeyConfig_Errors(t *testing.T) {
	for name, data := range map[string]string{
		"parse":          "[keys\n",
		"unknown action": "[keys]\nf = \"fly\"\n",
		"long rune":      "[keys]\nab = \"shoot\"\n",
		"unknown key":    "[special]\nHyper-Z = \"shoot\"\n",
		"bad value type": "[keys]\nf = 3\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadKeyConfig([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestMouse(t *testing.T) {
	press := tcell.NewEventMouse(5, 6, tcell.ButtonPrimary, tcell.ModNone)
	its := Mouse(press, tcell.ButtonNone)
	require.Len(t, its, 2)
	assert.Equal(t, Intent{Type: IntentHandGrab, X: 5, Y: 6}, its[0])
	assert.Equal(t, Intent{Type: IntentHandMove, Right: true, X: 5, Y: 6}, its[1])

	release := tcell.NewEventMouse(7, 6, tcell.ButtonNone, tcell.ModNone)
	its = Mouse(release, tcell.ButtonPrimary)
	assert.Equal(t, IntentHandRelease, its[0].Type)
	assert.Equal(t, 7, its[0].X)

	right := tcell.NewEventMouse(1, 1, tcell.ButtonSecondary, tcell.ModNone)
	its = Mouse(right, tcell.ButtonNone)
	assert.Equal(t, IntentHandMove, its[0].Type)
	assert.Equal(t, IntentHandGrab, its[1].Type)
	assert.True(t, its[1].Right)
}
