package event

import (
	"reflect"
	"strings"
	"sync"
)

var (
	nameToType    = make(map[string]EventType)
	typeToName    = make(map[EventType]string)
	typeToPayload = make(map[EventType]reflect.Type)
	registryOnce  sync.Once
)

// RegisterType maps a string name to an EventType and its payload struct type
// payloadInstance should be a pointer to the payload struct (e.g., &HealPayload{})
// Pass nil if the event has no payload
func RegisterType(name string, et EventType, payloadInstance any) {
	nameToType[name] = et
	typeToName[et] = name
	if payloadInstance != nil {
		t := reflect.TypeOf(payloadInstance)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		typeToPayload[et] = t
	}
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	InitRegistry()
	// Special case for FSM "Tick"
	if strings.EqualFold(name, "Tick") {
		return EventTick, true
	}
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	InitRegistry()
	if et == EventTick {
		return "Tick"
	}
	return typeToName[et]
}

// NewPayloadStruct returns a new pointer to a zero-value payload struct for the event type
// Returns nil if no payload is registered
func NewPayloadStruct(et EventType) any {
	InitRegistry()
	t, ok := typeToPayload[et]
	if !ok {
		return nil
	}
	return reflect.New(t).Interface()
}

// InitRegistry populates the registry with all game events
// Safe to call repeatedly; registration runs once
func InitRegistry() {
	registryOnce.Do(func() {
		// Actions
		RegisterType("EventStartGame", EventStartGame, nil)
		RegisterType("EventResume", EventResume, nil)
		RegisterType("EventOpenMenu", EventOpenMenu, nil)
		RegisterType("EventReturnToMenu", EventReturnToMenu, nil)
		RegisterType("EventShoot", EventShoot, nil)
		RegisterType("EventReload", EventReload, nil)
		RegisterType("EventHeal", EventHeal, &HealPayload{})
		RegisterType("EventHitGlass", EventHitGlass, nil)

		// Feedback
		RegisterType("EventShotFired", EventShotFired, &ShotPayload{})
		RegisterType("EventShotDenied", EventShotDenied, nil)
		RegisterType("EventReloaded", EventReloaded, nil)
		RegisterType("EventHealed", EventHealed, &HealPayload{})
		RegisterType("EventLevelUp", EventLevelUp, &LevelPayload{})
		RegisterType("EventBossRevealed", EventBossRevealed, nil)
		RegisterType("EventGlassCracked", EventGlassCracked, &CrackPayload{})
		RegisterType("EventGlassShattered", EventGlassShattered, nil)
		RegisterType("EventSessionReset", EventSessionReset, &SessionPayload{})
		RegisterType("EventPhaseChanged", EventPhaseChanged, &PhasePayload{})
	})
}
