package game

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/gman-shooter/engine/fsm"
	"github.com/lixenwraith/gman-shooter/event"
	"github.com/lixenwraith/gman-shooter/parameter"
	"github.com/lixenwraith/gman-shooter/status"
)

//go:embed progression.toml
var defaultProgression []byte

// ErrMissingPhase is returned when a progression definition lacks a state for a phase
var ErrMissingPhase = errors.New("game: progression is missing a phase state")

// DefaultProgression returns the embedded progression definition
func DefaultProgression() []byte {
	return defaultProgression
}

// Controller owns the session state and drives it through the progression FSM
// Not safe for concurrent use: all calls come from the game loop
type Controller struct {
	state        SessionState
	suspended    Phase
	hasSuspended bool
	sessionID    string
	frame        int64

	machine  *fsm.Machine[*Controller]
	feedback *event.Queue
	stats    *status.Registry
}

type options struct {
	definition     []byte
	definitionPath string
	stats          *status.Registry
}

// Option configures a Controller
type Option func(*options)

// WithDefinition replaces the embedded progression definition
func WithDefinition(data []byte) Option {
	return func(o *options) { o.definition = data }
}

// WithDefinitionPath loads the progression definition from a file, taking priority over WithDefinition
func WithDefinitionPath(path string) Option {
	return func(o *options) { o.definitionPath = path }
}

// WithStatus publishes counters to the diagnostics registry
func WithStatus(stats *status.Registry) Option {
	return func(o *options) { o.stats = stats }
}

// NewController builds the progression machine and enters the initial phase
func NewController(opts ...Option) (*Controller, error) {
	o := options{definition: defaultProgression}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Controller{
		state:     NewSessionState(),
		sessionID: uuid.NewString(),
		feedback:  event.NewQueue(),
		stats:     o.stats,
	}

	m := fsm.NewMachine[*Controller]()
	registerProgression(m)
	if err := fsm.LoadConfigAuto(m, o.definitionPath, o.definition); err != nil {
		return nil, fmt.Errorf("load progression: %w", err)
	}
	for _, name := range phaseNames {
		if _, ok := m.GetStateID(name); !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingPhase, name)
		}
	}

	c.machine = m
	if err := m.Init(c); err != nil {
		return nil, fmt.Errorf("init progression: %w", err)
	}
	c.stats.SetLabel(status.SessionID, c.shortID())
	return c, nil
}

// Apply dispatches one player action
// Returns false when the action was denied or has no edge from the current phase
func (c *Controller) Apply(ev event.GameEvent) bool {
	var accepted bool
	switch ev.Type {
	case event.EventShoot:
		accepted = c.shoot()
	case event.EventReload:
		accepted = c.reload()
	case event.EventHeal:
		amount := parameter.DefaultHealAmount
		if p, ok := ev.Payload.(*event.HealPayload); ok && p != nil {
			amount = p.Amount
		}
		accepted = c.heal(amount)
	case event.EventHitGlass:
		accepted = c.hitGlass()
	default:
		accepted = c.machine.HandleEvent(c, ev.Type)
	}

	// Automatic transitions fire in the same step as the action that enabled them
	if c.machine.Settle(c) {
		accepted = true
	}
	if accepted {
		c.stats.SetLabel(status.LastEvent, ev.Type.String())
	}
	return accepted
}

func (c *Controller) StartGame() bool    { return c.Apply(event.GameEvent{Type: event.EventStartGame}) }
func (c *Controller) Resume() bool       { return c.Apply(event.GameEvent{Type: event.EventResume}) }
func (c *Controller) OpenMenu() bool     { return c.Apply(event.GameEvent{Type: event.EventOpenMenu}) }
func (c *Controller) ReturnToMenu() bool { return c.Apply(event.GameEvent{Type: event.EventReturnToMenu}) }
func (c *Controller) Shoot() bool        { return c.Apply(event.GameEvent{Type: event.EventShoot}) }
func (c *Controller) Reload() bool       { return c.Apply(event.GameEvent{Type: event.EventReload}) }
func (c *Controller) HitGlass() bool     { return c.Apply(event.GameEvent{Type: event.EventHitGlass}) }

func (c *Controller) Heal(amount int) bool {
	return c.Apply(event.GameEvent{Type: event.EventHeal, Payload: &event.HealPayload{Amount: amount}})
}

// Tick advances phase time; presentation calls it once per frame
func (c *Controller) Tick(dt time.Duration) bool {
	c.frame++
	return c.machine.Update(c, dt)
}

// Snapshot returns a copy of the session state for presentation
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		SessionState: c.state,
		SessionID:    c.sessionID,
		CanResume:    c.state.Phase == PhaseMenu && c.hasSuspended,
	}
}

// Feedback returns the queue of signals produced by applied actions
func (c *Controller) Feedback() *event.Queue {
	return c.feedback
}

// TimeInPhase returns time spent in the current phase
func (c *Controller) TimeInPhase() time.Duration {
	return c.machine.TimeInState()
}

func (c *Controller) shoot() bool {
	if c.state.Phase != PhasePlaying && c.state.Phase != PhaseBossEncounter {
		return false
	}
	if c.state.Ammo <= 0 {
		c.stats.Inc(status.ShotsDenied)
		c.emit(event.EventShotDenied, nil)
		return false
	}

	c.state.Ammo--
	c.state.Score += parameter.ScorePerShot
	c.stats.Inc(status.ShotsFired)
	c.emit(event.EventShotFired, &event.ShotPayload{Ammo: c.state.Ammo, Score: c.state.Score})

	if c.state.Score%parameter.ScorePerLevel == 0 && c.state.Level < parameter.MaxLevel {
		c.state.Level++
		c.stats.Inc(status.LevelUps)
		c.emit(event.EventLevelUp, &event.LevelPayload{Level: c.state.Level})
		log.Printf("[game %s] level %d at score %d", c.shortID(), c.state.Level, c.state.Score)
	}
	return true
}

func (c *Controller) reload() bool {
	c.state.Ammo = parameter.MaxAmmo
	c.stats.Inc(status.Reloads)
	c.emit(event.EventReloaded, nil)
	return true
}

func (c *Controller) heal(amount int) bool {
	before := c.state.Health
	// Bound the gain by the missing health so huge amounts cannot overflow
	c.state.Health += min(max(amount, 0), parameter.MaxHealth-c.state.Health)
	c.stats.Inc(status.Heals)
	c.emit(event.EventHealed, &event.HealPayload{Amount: c.state.Health - before, Health: c.state.Health})
	return true
}

func (c *Controller) hitGlass() bool {
	if c.state.Phase != PhaseBossEncounter {
		return false
	}
	c.state.CrackCount = clamp(c.state.CrackCount+1, 0, parameter.GlassHitsToBreak)
	c.stats.Inc(status.GlassHits)
	c.emit(event.EventGlassCracked, &event.CrackPayload{Count: c.state.CrackCount})
	return true
}

func (c *Controller) emit(et event.EventType, payload any) {
	c.feedback.Push(event.GameEvent{Type: et, Payload: payload, Frame: c.frame})
}

func (c *Controller) shortID() string {
	if len(c.sessionID) > 8 {
		return c.sessionID[:8]
	}
	return c.sessionID
}
