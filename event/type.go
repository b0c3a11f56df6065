package event

// EventType represents the type of game event
type EventType int

const (
	// EventTick is the implicit trigger of automatic FSM transitions
	EventTick EventType = iota

	// === Player Actions ===

	// EventStartGame begins a fresh session
	// Trigger: Menu start control | Consumer: Controller (FSM) | Payload: nil
	EventStartGame

	// EventResume re-enters a suspended session
	// Trigger: Menu continue control | Consumer: Controller (FSM) | Payload: nil
	EventResume

	// EventOpenMenu suspends the session and shows the menu
	// Trigger: HUD menu control | Consumer: Controller (FSM) | Payload: nil
	EventOpenMenu

	// EventReturnToMenu leaves the credits (or the session) for the menu
	// Trigger: Credits menu control | Consumer: Controller (FSM) | Payload: nil
	EventReturnToMenu

	// EventShoot fires one round
	// Trigger: HUD shoot control | Consumer: Controller | Payload: nil
	EventShoot

	// EventReload refills the magazine
	// Trigger: HUD reload control | Consumer: Controller | Payload: nil
	EventReload

	// EventHeal restores health
	// Trigger: Medkit inventory slot | Consumer: Controller | Payload: *HealPayload
	EventHeal

	// EventHitGlass strikes the boss glass
	// Trigger: Hand click on glass | Consumer: Controller | Payload: nil
	EventHitGlass

	// === Feedback Signals ===

	// EventShotFired reports a successful shot
	// Trigger: Controller | Consumer: Audio, Status | Payload: *ShotPayload
	EventShotFired EventType = iota + 100

	// EventShotDenied reports a shot attempted with an empty magazine
	// Trigger: Controller | Consumer: Audio, Status | Payload: nil
	EventShotDenied

	// EventReloaded reports a completed reload
	// Trigger: Controller | Consumer: Audio, Status | Payload: nil
	EventReloaded

	// EventHealed reports applied healing
	// Trigger: Controller | Consumer: Audio, Status | Payload: *HealPayload
	EventHealed

	// EventLevelUp reports a level advance
	// Trigger: Controller | Consumer: Audio, Status | Payload: *LevelPayload
	EventLevelUp

	// EventBossRevealed reports the boss glass becoming visible
	// Trigger: FSM BossEncounter enter | Consumer: Audio | Payload: nil
	EventBossRevealed

	// EventGlassCracked reports one glass hit
	// Trigger: Controller | Consumer: Audio, Status | Payload: *CrackPayload
	EventGlassCracked

	// EventGlassShattered reports the boss glass breaking
	// Trigger: FSM Credits enter | Consumer: Audio | Payload: nil
	EventGlassShattered

	// EventSessionReset reports session data replaced with defaults
	// Trigger: FSM ResetSession action | Consumer: Status | Payload: *SessionPayload
	EventSessionReset

	// EventPhaseChanged reports a phase change
	// Trigger: FSM EnterPhase action | Consumer: Status, Audio | Payload: *PhasePayload
	EventPhaseChanged
)

// GameEvent is a single queued event
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

// String returns the registered event name
func (et EventType) String() string {
	if name := GetEventName(et); name != "" {
		return name
	}
	return "EventUnknown"
}

// IsAction reports whether the event is a player action accepted by the controller
func (et EventType) IsAction() bool {
	return et > EventTick && et < EventShotFired
}
