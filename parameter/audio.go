package parameter

import "time"

const (
	// DefaultSampleRate for synthesized effects
	DefaultSampleRate = 44100

	// SpeakerBufferDuration is the speaker buffer length
	SpeakerBufferDuration = 100 * time.Millisecond

	// DefaultMasterVolume applied to every effect
	DefaultMasterVolume = 0.5
)

// Shot: short square pop
const (
	ShotSoundDuration = 70 * time.Millisecond
	ShotSoundAttack   = 2 * time.Millisecond
	ShotSoundRelease  = 50 * time.Millisecond
)

// Dry fire: low click when the magazine is empty
const (
	DryFireSoundDuration = 40 * time.Millisecond
	DryFireSoundAttack   = 1 * time.Millisecond
	DryFireSoundRelease  = 30 * time.Millisecond
)

// Reload: noise sweep
const (
	ReloadSoundDuration = 180 * time.Millisecond
	ReloadSoundAttack   = 20 * time.Millisecond
	ReloadSoundRelease  = 120 * time.Millisecond
)

// Heal: soft bell
const (
	HealSoundDuration           = 400 * time.Millisecond
	HealSoundAttack             = 5 * time.Millisecond
	HealSoundFundamentalRelease = 350 * time.Millisecond
	HealSoundOvertoneRelease    = 200 * time.Millisecond
)

// Level up: rising two-note chime
const (
	LevelUpNote1Duration = 90 * time.Millisecond
	LevelUpNote2Duration = 220 * time.Millisecond
	LevelUpAttack        = 5 * time.Millisecond
	LevelUpNote1Release  = 40 * time.Millisecond
	LevelUpNote2Release  = 180 * time.Millisecond
)

// Boss reveal: low drone
const (
	BossRevealSoundDuration = 900 * time.Millisecond
	BossRevealSoundAttack   = 200 * time.Millisecond
	BossRevealSoundRelease  = 400 * time.Millisecond
)

// Glass crack and shatter
const (
	GlassCrackSoundDuration   = 120 * time.Millisecond
	GlassCrackSoundAttack     = 1 * time.Millisecond
	GlassCrackSoundRelease    = 100 * time.Millisecond
	GlassShatterSoundDuration = 600 * time.Millisecond
	GlassShatterSoundAttack   = 2 * time.Millisecond
	GlassShatterSoundRelease  = 500 * time.Millisecond
)

// Victory: three-note arpeggio
const (
	VictoryNoteDuration = 160 * time.Millisecond
	VictoryAttack       = 5 * time.Millisecond
	VictoryRelease      = 120 * time.Millisecond
)
