package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gman-shooter/event"
	"github.com/lixenwraith/gman-shooter/parameter"
	"github.com/lixenwraith/gman-shooter/status"
)

// Player plays feedback effects through a single mixer on the speaker
// Without a speaker it runs silent; the game never depends on audio
type Player struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	stats       *status.Registry

	// lock guards mixer mutation against the speaker goroutine
	lock   func()
	unlock func()
}

// NewPlayer creates a silent player; call Init to open the speaker
func NewPlayer(cfg *AudioConfig, stats *status.Registry) *Player {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &Player{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		stats:  stats,
		lock:   speaker.Lock,
		unlock: speaker.Unlock,
	}
}

// Init opens the speaker and starts the mixer
// Returns ErrNotInitialized wrapping the cause when no device is available
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.SpeakerBufferDuration)); err != nil {
		p.stats.SetFlag(status.AudioAvailable, false)
		return fmt.Errorf("%w: %v", ErrNotInitialized, err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	p.stats.SetFlag(status.AudioAvailable, true)
	log.Printf("[audio] speaker initialized at %d Hz", p.cfg.SampleRate)
	return nil
}

// Close clears pending sounds and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.lock()
	p.mixer.Clear()
	p.unlock()
	speaker.Close()
	p.initialized = false
}

// Available reports whether sounds reach a device
func (p *Player) Available() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// ToggleMute flips mute and returns the new state
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = !p.muted
	if p.muted && p.initialized {
		p.lock()
		p.mixer.Clear()
		p.unlock()
	}
	p.stats.SetFlag(status.AudioMuted, p.muted)
	return p.muted
}

// Muted reports the mute state
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Play queues an effect; returns false when silent, muted or unknown
func (p *Player) Play(st SoundType) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return false
	}
	s := GetSoundEffect(st, p.cfg)
	if s == nil {
		return false
	}
	p.lock()
	p.mixer.Add(s)
	p.unlock()
	return true
}

// PlayFor plays the effect mapped to a feedback event, if any
func (p *Player) PlayFor(ev event.GameEvent) bool {
	st, ok := SoundFor(ev)
	if !ok {
		return false
	}
	return p.Play(st)
}

// SoundFor maps controller feedback to an effect
func SoundFor(ev event.GameEvent) (SoundType, bool) {
	switch ev.Type {
	case event.EventShotFired:
		return SoundShot, true
	case event.EventShotDenied:
		return SoundDryFire, true
	case event.EventReloaded:
		return SoundReload, true
	case event.EventHealed:
		return SoundHeal, true
	case event.EventLevelUp:
		return SoundLevelUp, true
	case event.EventBossRevealed:
		return SoundBossReveal, true
	case event.EventGlassCracked:
		return SoundGlassCrack, true
	case event.EventGlassShattered:
		return SoundGlassShatter, true
	case event.EventPhaseChanged:
		if p, ok := ev.Payload.(*event.PhasePayload); ok && p != nil && p.To == event.PhaseCredits {
			return SoundVictory, true
		}
	}
	return 0, false
}
