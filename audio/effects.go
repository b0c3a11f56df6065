package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/gman-shooter/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	return &oscillator{
		freq:     freq,
		phase:    0,
		duration: samples,
		position: 0,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		position:       0,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; 0 maps to Silent since Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateShotSound generates a short square pop with a falling second partial
func CreateShotSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	body := NewOscillator(330.0, parameter.ShotSoundDuration, WaveSquare, rate)
	bodyShaped := NewEnvelope(body, parameter.ShotSoundDuration, parameter.ShotSoundAttack, parameter.ShotSoundRelease, rate)

	crack := NewOscillator(0, parameter.ShotSoundDuration, WaveNoise, rate)
	crackShaped := NewEnvelope(crack, parameter.ShotSoundDuration, parameter.ShotSoundAttack, parameter.ShotSoundRelease/2, rate)

	mixed := beep.Mix(
		newVolume(bodyShaped, 0.6),
		newVolume(crackShaped, 0.4),
	)
	return newVolume(mixed, cfg.volume(SoundShot))
}

// CreateDryFireSound generates a dull click for an empty magazine
func CreateDryFireSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(90.0, parameter.DryFireSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.DryFireSoundDuration, parameter.DryFireSoundAttack, parameter.DryFireSoundRelease, rate)

	return newVolume(shaped, cfg.volume(SoundDryFire))
}

// CreateReloadSound generates a mechanical noise burst
func CreateReloadSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.ReloadSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.ReloadSoundDuration, parameter.ReloadSoundAttack, parameter.ReloadSoundRelease, rate)

	return newVolume(shaped, cfg.volume(SoundReload))
}

// CreateHealSound generates a soft bell
func CreateHealSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Fundamental (E5)
	fund := NewOscillator(659.25, parameter.HealSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.HealSoundDuration, parameter.HealSoundAttack, parameter.HealSoundFundamentalRelease, rate)

	// Harmonic (Octave up)
	over := NewOscillator(1318.51, parameter.HealSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.HealSoundDuration, parameter.HealSoundAttack, parameter.HealSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, cfg.volume(SoundHeal))
}

// CreateLevelUpSound generates a rising two-note chime
func CreateLevelUpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// First note (B5)
	n1 := NewOscillator(987.77, parameter.LevelUpNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.LevelUpNote1Duration, parameter.LevelUpAttack, parameter.LevelUpNote1Release, rate)

	// Second note (E6)
	n2 := NewOscillator(1318.51, parameter.LevelUpNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.LevelUpNote2Duration, parameter.LevelUpAttack, parameter.LevelUpNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.volume(SoundLevelUp))
}

// CreateBossRevealSound generates a low detuned drone
func CreateBossRevealSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.BossRevealSoundDuration

	a := NewEnvelope(NewOscillator(55.0, d, WaveSaw, rate), d, parameter.BossRevealSoundAttack, parameter.BossRevealSoundRelease, rate)
	b := NewEnvelope(NewOscillator(55.8, d, WaveSaw, rate), d, parameter.BossRevealSoundAttack, parameter.BossRevealSoundRelease, rate)

	mixed := beep.Mix(newVolume(a, 0.5), newVolume(b, 0.5))
	return newVolume(mixed, cfg.volume(SoundBossReveal))
}

// CreateGlassCrackSound generates a bright noise tick over a high partial
func CreateGlassCrackSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.GlassCrackSoundDuration

	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, parameter.GlassCrackSoundAttack, parameter.GlassCrackSoundRelease, rate)
	ping := NewEnvelope(NewOscillator(3520.0, d, WaveSine, rate), d, parameter.GlassCrackSoundAttack, parameter.GlassCrackSoundRelease, rate)

	mixed := beep.Mix(newVolume(noise, 0.6), newVolume(ping, 0.4))
	return newVolume(mixed, cfg.volume(SoundGlassCrack))
}

// CreateGlassShatterSound generates a long noise burst
func CreateGlassShatterSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.GlassShatterSoundDuration

	noise := NewOscillator(0, d, WaveNoise, rate)
	shaped := NewEnvelope(noise, d, parameter.GlassShatterSoundAttack, parameter.GlassShatterSoundRelease, rate)

	return newVolume(shaped, cfg.volume(SoundGlassShatter))
}

// CreateVictorySound generates a C major arpeggio
func CreateVictorySound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.VictoryNoteDuration

	notes := []float64{523.25, 659.25, 783.99}
	seq := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		seq = append(seq, NewEnvelope(NewOscillator(f, d, WaveSine, rate), d, parameter.VictoryAttack, parameter.VictoryRelease, rate))
	}
	return newVolume(beep.Seq(seq...), cfg.volume(SoundVictory))
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundShot:
		return CreateShotSound(cfg)
	case SoundDryFire:
		return CreateDryFireSound(cfg)
	case SoundReload:
		return CreateReloadSound(cfg)
	case SoundHeal:
		return CreateHealSound(cfg)
	case SoundLevelUp:
		return CreateLevelUpSound(cfg)
	case SoundBossReveal:
		return CreateBossRevealSound(cfg)
	case SoundGlassCrack:
		return CreateGlassCrackSound(cfg)
	case SoundGlassShatter:
		return CreateGlassShatterSound(cfg)
	case SoundVictory:
		return CreateVictorySound(cfg)
	default:
		return nil
	}
}

func (cfg *AudioConfig) volume(st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}
