package game

import (
	"github.com/lixenwraith/gman-shooter/event"
	"github.com/lixenwraith/gman-shooter/parameter"
)

// Phase is the coarse-grained game state gating which actions are valid
type Phase uint8

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseBossEncounter
	PhaseCredits
)

var phaseNames = [...]string{
	PhaseMenu:          event.PhaseMenu,
	PhasePlaying:       event.PhasePlaying,
	PhaseBossEncounter: event.PhaseBossEncounter,
	PhaseCredits:       event.PhaseCredits,
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "Unknown"
}

// ParsePhase resolves a phase name as used in the progression config
func ParsePhase(name string) (Phase, bool) {
	for i, n := range phaseNames {
		if n == name {
			return Phase(i), true
		}
	}
	return PhaseMenu, false
}

// SessionState is one play-through's mutable progression data
type SessionState struct {
	Level      int
	Health     int
	Ammo       int
	Score      int
	Phase      Phase
	CrackCount int
}

// NewSessionState returns fresh session defaults
func NewSessionState() SessionState {
	return SessionState{
		Level:  parameter.StartLevel,
		Health: parameter.MaxHealth,
		Ammo:   parameter.MaxAmmo,
		Score:  0,
		Phase:  PhaseMenu,
	}
}

// Snapshot is the read-only view handed to presentation each frame
type Snapshot struct {
	SessionState

	// SessionID correlates log lines of one play-through
	SessionID string

	// CanResume is true in the menu while a suspended session exists
	CanResume bool
}

// InSession reports whether the snapshot is in a playable phase
func (s Snapshot) InSession() bool {
	return s.Phase == PhasePlaying || s.Phase == PhaseBossEncounter
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
