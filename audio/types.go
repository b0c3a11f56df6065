package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundShot         SoundType = iota // Successful shot
	SoundDryFire                       // Shot on an empty magazine
	SoundReload                        // Magazine restored
	SoundHeal                          // Medkit used
	SoundLevelUp                       // Level advanced
	SoundBossReveal                    // Glass and character shown
	SoundGlassCrack                    // Glass hit
	SoundGlassShatter                  // Third hit
	SoundVictory                       // Credits reached
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundShot:         "shot",
	SoundDryFire:      "dry_fire",
	SoundReload:       "reload",
	SoundHeal:         "heal",
	SoundLevelUp:      "level_up",
	SoundBossReveal:   "boss_reveal",
	SoundGlassCrack:   "crack",
	SoundGlassShatter: "shatter",
	SoundVictory:      "victory",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// ParseSoundType resolves a config effect name
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio: speaker not initialized")
	ErrUnknownEffect  = errors.New("audio: unknown effect name")
)
