package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/ambient-field/internal/field"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultMatchesEngineDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, field.DefaultParams(), cfg.Params())
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, 60, cfg.Window.TPS)
	assert.Equal(t, ThemeSystem, cfg.Theme)
	assert.Equal(t, 0.5, cfg.Layer.Opacity)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, 44100, cfg.Audio.SampleRate)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
theme: light
field:
  density: 5000
  spatial_index: false
audio:
  enabled: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ThemeLight, cfg.Theme)
	assert.Equal(t, 5000.0, cfg.Field.Density)
	assert.False(t, cfg.Field.SpatialIndex)
	assert.False(t, cfg.Audio.Enabled)
	// Untouched keys keep their defaults.
	assert.Equal(t, 150.0, cfg.Field.InteractionRadius)
	assert.Equal(t, 120, cfg.Burst.Frames)
	assert.Equal(t, "Ambient Field", cfg.Window.Title)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero width", "window: {width: 0}"},
		{"bad theme", "theme: sepia"},
		{"zero density", "field: {density: 0}"},
		{"negative link", "field: {link_distance: -5}"},
		{"zero burst frames", "burst: {frames: 0}"},
		{"opacity above one", "layer: {opacity: 1.5}"},
		{"zero sample rate", "audio: {sample_rate: 0}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "field: [not, a, map"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestThemeResolve(t *testing.T) {
	env := func(v string) func(string) string {
		return func(string) string { return v }
	}

	assert.True(t, ThemeDark.resolve(env("15;0")))
	assert.False(t, ThemeLight.resolve(env("0;15")))
	assert.True(t, ThemeSystem.resolve(env("")))
	assert.True(t, ThemeSystem.resolve(env("15;0")))
	assert.False(t, ThemeSystem.resolve(env("0;15")))
	assert.False(t, ThemeSystem.resolve(env("0;default;7")))
}

func TestThemeOf(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeOf(true))
	assert.Equal(t, ThemeLight, ThemeOf(false))
	assert.True(t, ThemeOf(true).Resolve())
	assert.False(t, ThemeOf(false).Resolve())
}

func TestParseTheme(t *testing.T) {
	for in, want := range map[string]Theme{
		"dark":    ThemeDark,
		" Light ": ThemeLight,
		"SYSTEM":  ThemeSystem,
	} {
		got, err := ParseTheme(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseTheme("sepia")
	require.ErrorIs(t, err, ErrInvalidConfig)
}
