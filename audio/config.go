package audio

import (
	"fmt"

	"github.com/lixenwraith/gman-shooter/config"
)

// AudioConfig holds resolved sound settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns full effect volumes at the default master volume
func DefaultAudioConfig() *AudioConfig {
	return NewAudioConfig(config.Default().Audio)
}

// NewAudioConfig converts runtime settings; effects not listed play at full volume
func NewAudioConfig(c config.AudioConfig) *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      c.Enabled,
		MasterVolume: c.MasterVolume,
		SampleRate:   c.SampleRate,
	}
	for i := range cfg.EffectVolumes {
		cfg.EffectVolumes[i] = 1.0
	}
	for name, v := range c.EffectVolumes {
		if st, ok := ParseSoundType(name); ok {
			cfg.EffectVolumes[st] = v
		}
	}
	return cfg
}

// ValidateEffectNames reports effect volume keys that match no sound
func ValidateEffectNames(c config.AudioConfig) error {
	for name := range c.EffectVolumes {
		if _, ok := ParseSoundType(name); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownEffect, name)
		}
	}
	return nil
}
