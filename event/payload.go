package event

// HealPayload carries a heal request or the applied result
type HealPayload struct {
	Amount int `toml:"amount"`
	Health int `toml:"health"`
}

// ShotPayload carries counters after a successful shot
type ShotPayload struct {
	Ammo  int
	Score int
}

// LevelPayload carries the level reached
type LevelPayload struct {
	Level int
}

// CrackPayload carries the glass crack count after a hit
type CrackPayload struct {
	Count int
}

// SessionPayload identifies a freshly reset session
type SessionPayload struct {
	SessionID string
}

// Phase names carried by PhasePayload and used as progression state names
const (
	PhaseMenu          = "Menu"
	PhasePlaying       = "Playing"
	PhaseBossEncounter = "BossEncounter"
	PhaseCredits       = "Credits"
)

// PhasePayload carries phase names of a transition
type PhasePayload struct {
	From string
	To   string
}
