package engine

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gman-shooter/animation"
	"github.com/lixenwraith/gman-shooter/audio"
	"github.com/lixenwraith/gman-shooter/config"
	"github.com/lixenwraith/gman-shooter/event"
	"github.com/lixenwraith/gman-shooter/game"
	"github.com/lixenwraith/gman-shooter/input"
	"github.com/lixenwraith/gman-shooter/interact"
	"github.com/lixenwraith/gman-shooter/locale"
	"github.com/lixenwraith/gman-shooter/render"
	"github.com/lixenwraith/gman-shooter/render/renderer"
	"github.com/lixenwraith/gman-shooter/scene"
	"github.com/lixenwraith/gman-shooter/status"
)

// Options wires a GameContext; zero values select defaults
type Options struct {
	Config config.Config

	// Screen receives flushed frames; nil renders headless
	Screen    tcell.Screen
	Width     int
	Height    int
	ColorMode render.ColorMode

	Keys    *input.KeyTable
	Audio   *audio.Player
	Locales *locale.Bundle
	Status  *status.Registry
}

// GameContext owns the controller and every presentation collaborator
// All methods run on the main loop goroutine
type GameContext struct {
	Controller   *game.Controller
	Hands        *interact.Pair
	Clock        animation.Clock
	Orchestrator *render.RenderOrchestrator
	Status       *status.Registry

	audio   *audio.Player
	printer *locale.Printer
	keys    *input.KeyTable
	debug   *renderer.DebugRenderer

	healAmount int

	// Main-loop exclusive
	Width, Height int
	prevButtons   tcell.ButtonMask
	lastPhase     game.Phase
}

// NewGameContext builds the controller and registers the render layers
func NewGameContext(opts Options) (*GameContext, error) {
	cfg := opts.Config
	stats := opts.Status
	if stats == nil {
		stats = status.NewRegistry()
	}

	ctrlOpts := []game.Option{game.WithStatus(stats)}
	if cfg.ProgressionPath != "" {
		ctrlOpts = append(ctrlOpts, game.WithDefinitionPath(cfg.ProgressionPath))
	}
	ctrl, err := game.NewController(ctrlOpts...)
	if err != nil {
		return nil, fmt.Errorf("engine: controller: %w", err)
	}

	printer, err := resolvePrinter(opts.Locales, cfg.Locale)
	if err != nil {
		return nil, err
	}

	keys := opts.Keys
	if keys == nil {
		keys = input.DefaultKeyTable()
	}

	healAmount := cfg.HealAmount
	if healAmount <= 0 {
		healAmount = config.Default().HealAmount
	}

	g := &GameContext{
		Controller: ctrl,
		Hands:      interact.NewPair(),
		Status:     stats,
		audio:      opts.Audio,
		printer:    printer,
		keys:       keys,
		healAmount: healAmount,
		Width:      opts.Width,
		Height:     opts.Height,
		lastPhase:  ctrl.Snapshot().Phase,
	}
	g.Orchestrator = render.NewRenderOrchestrator(opts.Screen, opts.ColorMode, opts.Width, opts.Height)
	g.debug = renderer.Register(g.Orchestrator, stats, opts.ColorMode, cfg.Debug)
	g.placeHands()

	log.Printf("[engine] ready %dx%d locale=%s color=%s", g.Width, g.Height, printer.Locale(), opts.ColorMode)
	return g, nil
}

// resolvePrinter falls back to the base locale when the configured one is not bundled
func resolvePrinter(b *locale.Bundle, name string) (*locale.Printer, error) {
	if b == nil {
		var err error
		if b, err = locale.LoadEmbedded(); err != nil {
			return nil, fmt.Errorf("engine: locales: %w", err)
		}
	}
	p, err := b.Printer(name)
	if errors.Is(err, locale.ErrUnknownLocale) {
		log.Printf("[engine] locale %q unavailable, using %s", name, locale.BaseLocale)
		p, err = b.Printer(locale.BaseLocale)
	}
	if err != nil {
		return nil, fmt.Errorf("engine: printer: %w", err)
	}
	return p, nil
}

// HandleEvent routes one terminal event; returns false when the game should exit
func (g *GameContext) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.HandleIntent(input.Intent{Type: g.keys.Lookup(ev)})
	case *tcell.EventMouse:
		for _, in := range input.Mouse(ev, g.prevButtons) {
			g.HandleIntent(in)
		}
		g.prevButtons = ev.Buttons()
	case *tcell.EventResize:
		w, h := ev.Size()
		g.Resize(w, h)
	}
	return true
}

// HandleIntent applies one intent; returns false on quit
func (g *GameContext) HandleIntent(in input.Intent) bool {
	phase := g.Controller.Snapshot().Phase

	switch in.Type {
	case input.IntentNone:
	case input.IntentQuit:
		log.Printf("[engine] quit requested in %s", phase)
		return false
	case input.IntentToggleMute:
		if g.audio != nil {
			g.audio.ToggleMute()
		}
	case input.IntentToggleDebug:
		g.debug.Toggle()
	case input.IntentConfirm:
		switch phase {
		case game.PhaseMenu:
			g.Controller.StartGame()
		case game.PhaseCredits:
			g.Controller.ReturnToMenu()
		}
	case input.IntentMenu:
		switch phase {
		case game.PhasePlaying, game.PhaseBossEncounter:
			g.Controller.OpenMenu()
		case game.PhaseCredits:
			g.Controller.ReturnToMenu()
		}
	case input.IntentHeal:
		g.Controller.Heal(g.healAmount)
	case input.IntentHandMove, input.IntentHandGrab, input.IntentHandRelease:
		g.handleHand(in)
	default:
		if et, ok := input.ToEvent(in.Type); ok {
			g.Controller.Apply(event.GameEvent{Type: et})
		}
	}

	g.syncPhase()
	return true
}

// handleHand drives the cursors; the left hand tracks the pointer, the right one only while its button is held
func (g *GameContext) handleHand(in input.Intent) {
	side := interact.Left
	if in.Right {
		side = interact.Right
	}
	targets := g.targets()

	switch in.Type {
	case input.IntentHandMove:
		if side == interact.Right && g.Hands.Hand(interact.Right).State != interact.Grab {
			return
		}
		g.Hands.Move(side, in.X, in.Y, targets)
	case input.IntentHandGrab:
		ev, ok := g.Hands.Press(side, in.X, in.Y, targets)
		if !ok {
			return
		}
		if ev.Type == event.EventHeal {
			g.Controller.Heal(g.healAmount)
			return
		}
		g.Controller.Apply(ev)
	case input.IntentHandRelease:
		g.Hands.Release(side, targets)
	}
}

// targets projects the current view into hit-testable rectangles
func (g *GameContext) targets() []interact.Target {
	return render.Targets(scene.Compose(g.Controller.Snapshot()), render.ComputeLayout(g.Width, g.Height))
}

// syncPhase resets the hands whenever the screen changes
func (g *GameContext) syncPhase() {
	phase := g.Controller.Snapshot().Phase
	if phase == g.lastPhase {
		return
	}
	log.Printf("[engine] phase %s -> %s", g.lastPhase, phase)
	g.lastPhase = phase
	g.Hands.Reset()
	g.placeHands()
}

// placeHands parks the cursors at the scene's hand positions
func (g *GameContext) placeHands() {
	l := render.ComputeLayout(g.Width, g.Height)
	view := scene.Compose(g.Controller.Snapshot())
	targets := render.Targets(view, l)
	for side, id := range [2]string{scene.IDHandLeft, scene.IDHandRight} {
		e, ok := view.Find(id)
		if !ok {
			continue
		}
		x, y := l.Project(e.Pos)
		g.Hands.Move(interact.Side(side), x, y, targets)
	}
}

// Resize updates dimensions and the render buffer
func (g *GameContext) Resize(w, h int) {
	g.Width, g.Height = w, h
	g.Orchestrator.Resize(w, h)
	g.placeHands()
}

// Frame advances time, forwards feedback to audio and renders
func (g *GameContext) Frame(dt time.Duration) {
	g.Clock.Advance(dt)
	g.Controller.Tick(dt)
	g.drainFeedback()
	g.syncPhase()
	g.Status.Inc(status.Frames)

	ctx := render.NewRenderContext(g.Controller.Snapshot(), g.Clock.T(), g.Hands.Hands(), g.printer, g.Width, g.Height)
	if g.audio != nil {
		ctx.AudioMuted = g.audio.Muted()
		ctx.AudioAvailable = g.audio.Available()
	}
	g.Orchestrator.RenderFrame(ctx)
}

func (g *GameContext) drainFeedback() {
	for _, ev := range g.Controller.Feedback().Consume() {
		if g.audio != nil {
			g.audio.PlayFor(ev)
		}
	}
}

// DebugVisible reports whether the diagnostics overlay is shown
func (g *GameContext) DebugVisible() bool {
	return g.debug.IsVisible()
}
