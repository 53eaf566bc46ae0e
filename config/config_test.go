// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/animwall/gpu"
	"cogentcore.org/animwall/placement"
	"cogentcore.org/animwall/playback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := New()
	assert.Equal(t, 5, cfg.FPS)
	assert.Equal(t, 25, cfg.RenderedFPS)
	assert.Equal(t, Auto, cfg.Mode)
	assert.Equal(t, placement.Auto, cfg.Placement)
	assert.Equal(t, gpu.LowPower, cfg.PowerPreference)
	assert.Error(t, cfg.Validate())

	cfg.FramePath = "frames"
	assert.NoError(t, cfg.Validate())
}

func TestOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "animwall.toml")
	toml := `frame_path = "/srv/frames"
rendered_fps = 60
mode = "continuous"
placement = "none"
power_preference = "high-performance"
`
	require.NoError(t, os.WriteFile(fn, []byte(toml), 0666))
	cfg := New()
	require.NoError(t, cfg.Open(fn))
	assert.Equal(t, "/srv/frames", cfg.FramePath)
	assert.Equal(t, 5, cfg.FPS)
	assert.Equal(t, 60, cfg.RenderedFPS)
	assert.Equal(t, Continuous, cfg.Mode)
	assert.Equal(t, placement.None, cfg.Placement)
	assert.Equal(t, gpu.HighPerformance, cfg.PowerPreference)
}

func TestOpenInvalid(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte(`mode = "sometimes"`), 0666))
	assert.ErrorContains(t, New().Open(bad), "sometimes")

	unknown := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(unknown, []byte(`framerate = 3`), 0666))
	assert.Error(t, New().Open(unknown))

	assert.Error(t, New().Open(filepath.Join(dir, "missing.toml")))
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "animwall.toml")
	cfg := New()
	cfg.FramePath = "anim.gif"
	cfg.Mode = Discrete
	cfg.Debug = true
	require.NoError(t, cfg.Save(fn))
	got := &Config{}
	require.NoError(t, got.Open(fn))
	assert.Equal(t, cfg, got)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	frag := filepath.Join(dir, "pulse.wgsl")
	require.NoError(t, os.WriteFile(frag, []byte("// empty"), 0666))

	cfg := New()
	cfg.FramePath = dir
	cfg.FPS = 0
	cfg.RenderedFPS = -1
	cfg.CustomFragment = filepath.Join(dir, "missing.txt")
	err := cfg.Validate()
	assert.ErrorContains(t, err, "fps must be positive")
	assert.ErrorContains(t, err, "rendered fps must be positive")
	assert.ErrorContains(t, err, "custom fragment shader")

	cfg.FPS, cfg.RenderedFPS, cfg.CustomFragment = 5, 25, frag
	assert.NoError(t, cfg.Validate())
}

func TestPlaybackMode(t *testing.T) {
	cfg := New()
	assert.Equal(t, playback.Discrete, cfg.PlaybackMode())
	cfg.CustomFragment = "pulse.wgsl"
	assert.Equal(t, playback.Continuous, cfg.PlaybackMode())
	cfg.Mode = Discrete
	assert.Equal(t, playback.Discrete, cfg.PlaybackMode())
	cfg.CustomFragment = ""
	cfg.Mode = Continuous
	assert.Equal(t, playback.Continuous, cfg.PlaybackMode())
}
