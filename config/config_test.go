package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gman.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "en-US", cfg.Locale)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, 25, cfg.HealAmount)
}

func TestLoad_NoFileNoEnv(t *testing.T) {
	cfg, err := Load("", map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_TOMLOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
locale = "ru-RU"
frame_rate = 60
color_mode = "256"

[audio]
enabled = false
master_volume = 0.3

[audio.effects]
shot = 0.8
`)
	cfg, err := Load(path, map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "ru-RU", cfg.Locale)
	assert.Equal(t, 60, cfg.FrameRate)
	assert.Equal(t, Color256, cfg.ColorMode)
	assert.False(t, cfg.Audio.Enabled)
	assert.InDelta(t, 0.3, cfg.Audio.MasterVolume, 1e-9)
	assert.InDelta(t, 0.8, cfg.Audio.EffectVolumes["shot"], 1e-9)

	// Untouched keys keep defaults
	assert.Equal(t, 25, cfg.HealAmount)
	assert.Equal(t, 44100, cfg.Audio.SampleRate)
}

func TestLoad_EnvOverridesTOML(t *testing.T) {
	path := writeConfig(t, "locale = \"ru-RU\"\nheal_amount = 10\n")
	cfg, err := Load(path, map[string]string{
		"GMAN_LOCALE":               "en-US",
		"GMAN_AUDIO_ENABLED":        "false",
		"GMAN_AUDIO_MASTER_VOLUME":  "0.9",
		"GMAN_AUDIO_EFFECT_VOLUMES": "crack:0.5,victory:1",
		"UNRELATED":                 "x",
	})
	require.NoError(t, err)

	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, 10, cfg.HealAmount)
	assert.False(t, cfg.Audio.Enabled)
	assert.InDelta(t, 0.9, cfg.Audio.MasterVolume, 1e-9)
	assert.InDelta(t, 0.5, cfg.Audio.EffectVolumes["crack"], 1e-9)
	assert.InDelta(t, 1.0, cfg.Audio.EffectVolumes["victory"], 1e-9)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"), map[string]string{})
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "locale = [\n"), map[string]string{})
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "frame_rat = 30\n"), map[string]string{})
	assert.Error(t, err, "unknown keys are rejected")

	_, err = Load("", map[string]string{"GMAN_FRAME_RATE": "fast"})
	assert.ErrorContains(t, err, "parse env")

	_, err = Load(writeConfig(t, "frame_rate = 0\n"), map[string]string{})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty locale", func(c *Config) { c.Locale = "" }},
		{"frame rate high", func(c *Config) { c.FrameRate = 1000 }},
		{"heal negative", func(c *Config) { c.HealAmount = -1 }},
		{"heal over max", func(c *Config) { c.HealAmount = 101 }},
		{"volume", func(c *Config) { c.Audio.MasterVolume = 1.5 }},
		{"sample rate", func(c *Config) { c.Audio.SampleRate = 0 }},
		{"color mode", func(c *Config) { c.ColorMode = "mono" }},
		{"effect volume", func(c *Config) { c.Audio.EffectVolumes["shot"] = -0.1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestFrameInterval(t *testing.T) {
	cfg := Default()
	cfg.FrameRate = 50
	assert.Equal(t, 20*time.Millisecond, cfg.FrameInterval())

	cfg.FrameRate = 0
	assert.Greater(t, cfg.FrameInterval(), time.Duration(0))
}
