package input

import "github.com/lixenwraith/gman-shooter/event"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Ctrl+C
	IntentToggleMute  // Ctrl+S
	IntentToggleDebug // F1
	IntentResize      // Terminal resize event

	// Progression
	IntentStart   // Bindable, starts a fresh session
	IntentResume  // c
	IntentMenu    // Esc, m
	IntentConfirm // Enter, context-dependent

	// Play
	IntentShoot    // Space
	IntentReload   // r
	IntentHeal     // h
	IntentHitGlass // g

	// Hands
	IntentHandMove    // Mouse motion
	IntentHandGrab    // Button press
	IntentHandRelease // Button release
)

// Intent is one parsed input
type Intent struct {
	Type IntentType

	// Hand fields, set for mouse intents
	Right bool
	X, Y  int
}

// ToEvent maps a progression or play intent to the controller action it triggers
func ToEvent(it IntentType) (event.EventType, bool) {
	switch it {
	case IntentStart:
		return event.EventStartGame, true
	case IntentResume:
		return event.EventResume, true
	case IntentMenu:
		return event.EventOpenMenu, true
	case IntentShoot:
		return event.EventShoot, true
	case IntentReload:
		return event.EventReload, true
	case IntentHeal:
		return event.EventHeal, true
	case IntentHitGlass:
		return event.EventHitGlass, true
	}
	return event.EventTick, false
}
