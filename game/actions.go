package game

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/lixenwraith/gman-shooter/engine/fsm"
	"github.com/lixenwraith/gman-shooter/event"
	"github.com/lixenwraith/gman-shooter/status"
)

// registerProgression binds the action and guard names used by progression.toml
func registerProgression(m *fsm.Machine[*Controller]) {
	m.RegisterAction("EnterPhase", actionEnterPhase)
	m.RegisterAction("ResetSession", actionResetSession)
	m.RegisterAction("SuspendSession", actionSuspendSession)
	m.RegisterAction("ResumeSession", actionResumeSession)
	m.RegisterAction("ShowGlass", actionShowGlass)
	m.RegisterAction("ShatterGlass", actionShatterGlass)

	m.RegisterGuardFactory("LevelAtLeast", func(args map[string]any) (fsm.GuardFunc[*Controller], error) {
		level, err := fsm.IntArg(args, "level")
		if err != nil {
			return nil, err
		}
		return func(c *Controller) bool { return c.state.Level >= level }, nil
	})

	m.RegisterGuardFactory("CracksAtLeast", func(args map[string]any) (fsm.GuardFunc[*Controller], error) {
		count, err := fsm.IntArg(args, "count")
		if err != nil {
			return nil, err
		}
		return func(c *Controller) bool { return c.state.CrackCount >= count }, nil
	})

	m.RegisterGuardFactory("SuspendedIn", func(args map[string]any) (fsm.GuardFunc[*Controller], error) {
		name, err := fsm.StringArg(args, "phase")
		if err != nil {
			return nil, err
		}
		phase, ok := ParsePhase(name)
		if !ok {
			return nil, fmt.Errorf("unknown phase '%s'", name)
		}
		return func(c *Controller) bool { return c.hasSuspended && c.suspended == phase }, nil
	})
}

func actionEnterPhase(c *Controller, args map[string]any) {
	name, err := fsm.StringArg(args, "phase")
	if err != nil {
		log.Printf("[game %s] EnterPhase: %v", c.shortID(), err)
		return
	}
	phase, ok := ParsePhase(name)
	if !ok {
		log.Printf("[game %s] EnterPhase: unknown phase '%s'", c.shortID(), name)
		return
	}

	from := c.state.Phase
	c.state.Phase = phase
	c.stats.SetLabel(status.Phase, phase.String())
	c.emit(event.EventPhaseChanged, &event.PhasePayload{From: from.String(), To: phase.String()})
	log.Printf("[game %s] phase %s -> %s", c.shortID(), from, phase)
}

// actionResetSession replaces session data with defaults, the phase is left to EnterPhase
func actionResetSession(c *Controller, _ map[string]any) {
	phase := c.state.Phase
	c.state = NewSessionState()
	c.state.Phase = phase
	c.hasSuspended = false
	c.sessionID = uuid.NewString()

	c.stats.Inc(status.Sessions)
	c.stats.SetLabel(status.SessionID, c.shortID())
	c.emit(event.EventSessionReset, &event.SessionPayload{SessionID: c.sessionID})
	log.Printf("[game %s] session reset", c.shortID())
}

func actionSuspendSession(c *Controller, _ map[string]any) {
	c.suspended = c.state.Phase
	c.hasSuspended = true
	log.Printf("[game %s] suspended in %s at level %d score %d", c.shortID(), c.suspended, c.state.Level, c.state.Score)
}

func actionResumeSession(c *Controller, _ map[string]any) {
	c.hasSuspended = false
}

// actionShowGlass resets cracks whenever the boss glass is (re)shown
func actionShowGlass(c *Controller, _ map[string]any) {
	c.state.CrackCount = 0
	c.emit(event.EventBossRevealed, nil)
}

func actionShatterGlass(c *Controller, _ map[string]any) {
	c.emit(event.EventGlassShattered, nil)
}
