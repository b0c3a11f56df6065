package input

// actionRegistry maps canonical action names to intents
// Used by keymap config loader to resolve TOML action strings to bindings
var actionRegistry = map[string]IntentType{
	// Unbind sentinel
	"none": IntentNone,

	// System
	"quit":         IntentQuit,
	"toggle_mute":  IntentToggleMute,
	"toggle_debug": IntentToggleDebug,

	// Progression
	"start":   IntentStart,
	"resume":  IntentResume,
	"menu":    IntentMenu,
	"confirm": IntentConfirm,

	// Play
	"shoot":     IntentShoot,
	"reload":    IntentReload,
	"heal":      IntentHeal,
	"hit_glass": IntentHitGlass,
}

// ActionIntent resolves an action name
func ActionIntent(name string) (IntentType, bool) {
	it, ok := actionRegistry[name]
	return it, ok
}

// ActionName returns the canonical name bound to an intent, empty if none
func ActionName(it IntentType) string {
	for name, v := range actionRegistry {
		if v == it && name != "none" {
			return name
		}
	}
	return ""
}
