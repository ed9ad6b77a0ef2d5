package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/platformer/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
	assert.Equal(t, sim.DefaultTuning(), s.Physics.Tuning())
	assert.Equal(t, sim.DefaultAnimationTuning(), s.Animation.Tuning())
	assert.Equal(t, 16*time.Millisecond, s.FrameDelay())
}

func TestLoadSettingsPartialOverlay(t *testing.T) {
	cases := []struct {
		name string
		file string
		body string
	}{
		{"yaml", "tuning.yaml", "physics:\n  gravity: 0.75\nloop:\n  frame_delay_ms: 0\n"},
		{"toml", "tuning.toml", "[physics]\ngravity = 0.75\n\n[loop]\nframe_delay_ms = 0\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := LoadSettings(writeFile(t, c.file, c.body))
			require.NoError(t, err)
			assert.Equal(t, 0.75, s.Physics.Gravity)
			assert.Equal(t, 0, s.Loop.FrameDelayMS)
			assert.Equal(t, Default().Physics.MaxSpeed, s.Physics.MaxSpeed)
			assert.Equal(t, Default().Input, s.Input)
		})
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("malformed", func(t *testing.T) {
		_, err := LoadSettings(writeFile(t, "bad.yaml", "physics: [1, 2"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalid)
	})
	t.Run("invalid", func(t *testing.T) {
		_, err := LoadSettings(writeFile(t, "bad.yaml", "physics:\n  gravity: 0\n  jump_strength: 4\n"))
		require.ErrorIs(t, err, ErrInvalid)
		assert.Contains(t, err.Error(), "physics.gravity")
		assert.Contains(t, err.Error(), "physics.jump_strength")
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"negative_friction", func(s *Settings) { s.Physics.Friction = -1 }},
		{"zero_max_speed", func(s *Settings) { s.Physics.MaxSpeed = 0 }},
		{"zero_band", func(s *Settings) { s.Physics.LandingBand = 0 }},
		{"negative_repeat", func(s *Settings) { s.Input.RepeatIntervalFrames = -1 }},
		{"zero_tps", func(s *Settings) { s.Loop.TPS = 0 }},
		{"zero_ticks_per_frame", func(s *Settings) { s.Animation.TicksPerFrame = 0 }},
	}
	require.NoError(t, Default().Validate())
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := Default()
			c.mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalid)
		})
	}
}

func TestApply(t *testing.T) {
	w := sim.NewWorld()
	w.Body.Vel.X = 3
	s := Default()
	s.Physics.Gravity = 1
	s.Animation.JumpFrame = 5
	s.Apply(w)

	assert.Equal(t, 1.0, w.Tuning.Gravity)
	assert.Equal(t, 5, w.Animation.JumpFrame)
	assert.Equal(t, 3.0, w.Body.Vel.X)
}
