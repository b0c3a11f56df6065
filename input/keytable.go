package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Enter, Esc, function keys)
	Keys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC: IntentQuit,
			tcell.KeyCtrlS: IntentToggleMute,
			tcell.KeyF1:    IntentToggleDebug,
			tcell.KeyEnter: IntentConfirm,
			tcell.KeyEsc:   IntentMenu,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			' ': IntentShoot,
			'r': IntentReload,
			'h': IntentHeal,
			'g': IntentHitGlass,
			'm': IntentMenu,
			'c': IntentResume,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Keys:  maps.Clone(kt.Keys),
		Runes: maps.Clone(kt.Runes),
	}
}

// Lookup resolves a key event; runes are matched case-insensitively as typed, then lower-cased
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if it, ok := kt.Runes[r]; ok {
			return it
		}
		if r >= 'A' && r <= 'Z' {
			return kt.Runes[r+('a'-'A')]
		}
		return IntentNone
	}
	return kt.Keys[ev.Key()]
}

// Mouse translates a mouse event against the previous button state
// Primary button drives the left hand, secondary the right
func Mouse(ev *tcell.EventMouse, prev tcell.ButtonMask) []Intent {
	x, y := ev.Position()
	btn := ev.Buttons()

	var out []Intent
	for _, h := range []struct {
		mask  tcell.ButtonMask
		right bool
	}{
		{tcell.ButtonPrimary, false},
		{tcell.ButtonSecondary, true},
	} {
		now, was := btn&h.mask != 0, prev&h.mask != 0
		switch {
		case now && !was:
			out = append(out, Intent{Type: IntentHandGrab, Right: h.right, X: x, Y: y})
		case !now && was:
			out = append(out, Intent{Type: IntentHandRelease, Right: h.right, X: x, Y: y})
		default:
			out = append(out, Intent{Type: IntentHandMove, Right: h.right, X: x, Y: y})
		}
	}
	return out
}
