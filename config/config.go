// Package config resolves runtime settings from defaults, a TOML file and the environment
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/gman-shooter/parameter"
)

// EnvPrefix is prepended to every environment override
const EnvPrefix = "GMAN_"

// Color modes
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("config: invalid value")

// AudioConfig holds sound settings
type AudioConfig struct {
	Enabled      bool    `toml:"enabled" env:"ENABLED"`
	MasterVolume float64 `toml:"master_volume" env:"MASTER_VOLUME"`
	SampleRate   int     `toml:"sample_rate" env:"SAMPLE_RATE"`

	// EffectVolumes scales individual effects by name, e.g. shot = 0.8
	EffectVolumes map[string]float64 `toml:"effects" env:"EFFECT_VOLUMES" envKeyValSeparator:":"`
}

// Config is the resolved runtime configuration
type Config struct {
	Locale          string `toml:"locale" env:"LOCALE"`
	Debug           bool   `toml:"debug" env:"DEBUG"`
	FrameRate       int    `toml:"frame_rate" env:"FRAME_RATE"`
	HealAmount      int    `toml:"heal_amount" env:"HEAL_AMOUNT"`
	ColorMode       string `toml:"color_mode" env:"COLOR_MODE"`
	KeymapPath      string `toml:"keymap" env:"KEYMAP"`
	ProgressionPath string `toml:"progression" env:"PROGRESSION"`

	Audio AudioConfig `toml:"audio" envPrefix:"AUDIO_"`
}

// Default returns built-in settings
func Default() Config {
	return Config{
		Locale:     "en-US",
		FrameRate:  parameter.DefaultFrameRate,
		HealAmount: parameter.DefaultHealAmount,
		ColorMode:  ColorAuto,
		Audio: AudioConfig{
			Enabled:       true,
			MasterVolume:  parameter.DefaultMasterVolume,
			SampleRate:    parameter.DefaultSampleRate,
			EffectVolumes: map[string]float64{},
		},
	}
}

// Load applies the TOML file at path (if any) and then environ over the defaults
// A nil environ reads the process environment
func Load(path string, environ map[string]string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := decodeTOML(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := ApplyEnv(&cfg, environ); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func decodeTOML(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// ApplyEnv overlays GMAN_* variables; unset variables leave fields untouched
func ApplyEnv(cfg *Config, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks ranges and enumerations
func (c Config) Validate() error {
	switch {
	case c.Locale == "":
		return fmt.Errorf("%w: locale is empty", ErrInvalid)
	case c.FrameRate < 1 || c.FrameRate > 240:
		return fmt.Errorf("%w: frame_rate %d outside 1..240", ErrInvalid, c.FrameRate)
	case c.HealAmount < 0 || c.HealAmount > parameter.MaxHealth:
		return fmt.Errorf("%w: heal_amount %d outside 0..%d", ErrInvalid, c.HealAmount, parameter.MaxHealth)
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return fmt.Errorf("%w: audio.master_volume %.2f outside 0..1", ErrInvalid, c.Audio.MasterVolume)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: audio.sample_rate %d", ErrInvalid, c.Audio.SampleRate)
	}
	switch c.ColorMode {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return fmt.Errorf("%w: color_mode %q", ErrInvalid, c.ColorMode)
	}
	for name, v := range c.Audio.EffectVolumes {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: audio.effects.%s %.2f outside 0..1", ErrInvalid, name, v)
		}
	}
	return nil
}

// FrameInterval returns the render tick period
func (c Config) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return parameter.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.FrameRate)
}
