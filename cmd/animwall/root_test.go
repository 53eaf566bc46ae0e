// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"cogentcore.org/animwall/config"
	"cogentcore.org/animwall/gpu"
	"cogentcore.org/animwall/placement"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*config.Config, error) {
	fs := pflag.NewFlagSet("animwall", pflag.ContinueOnError)
	fl, opts := config.New(), &options{}
	addFlags(fs, fl, opts)
	require.NoError(t, fs.Parse(args))
	return loadConfig(fs, fl, opts, fs.Args())
}

func TestFlags(t *testing.T) {
	cfg, err := parse(t, "-f", "12", "--rendered-fps=60", "--mode", "continuous", "--power", "high-performance", "-d", "frames")
	require.NoError(t, err)
	assert.Equal(t, "frames", cfg.FramePath)
	assert.Equal(t, 12, cfg.FPS)
	assert.Equal(t, 60, cfg.RenderedFPS)
	assert.Equal(t, config.Continuous, cfg.Mode)
	assert.Equal(t, gpu.HighPerformance, cfg.PowerPreference)
	assert.Equal(t, placement.Auto, cfg.Placement)
	assert.True(t, cfg.Debug)
}

func TestFlagsOverrideFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "animwall.toml")
	require.NoError(t, os.WriteFile(fn, []byte("frame_path = \"file-frames\"\nfps = 8\nrendered_fps = 30\nplacement = \"none\"\n"), 0666))

	cfg, err := parse(t, "--config", fn, "-r", "50")
	require.NoError(t, err)
	assert.Equal(t, "file-frames", cfg.FramePath)
	assert.Equal(t, 8, cfg.FPS, "unset flags keep the file value")
	assert.Equal(t, 50, cfg.RenderedFPS)
	assert.Equal(t, placement.None, cfg.Placement)

	cfg, err = parse(t, "-c", fn, "other")
	require.NoError(t, err)
	assert.Equal(t, "other", cfg.FramePath)
}

func TestFlagsInvalid(t *testing.T) {
	_, err := parse(t)
	assert.ErrorContains(t, err, "frame path is required")

	_, err = parse(t, "-f", "0", "frames")
	assert.ErrorContains(t, err, "fps must be positive")

	fs := pflag.NewFlagSet("animwall", pflag.ContinueOnError)
	addFlags(fs, config.New(), &options{})
	assert.Error(t, fs.Parse([]string{"--mode", "sometimes"}))
}

func TestFlagsUnderscore(t *testing.T) {
	cfg, err := parse(t, "--rendered_fps=40", "--fps", "3", "frames")
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.RenderedFPS)
	assert.Equal(t, 3, cfg.FPS)

	fs := pflag.NewFlagSet("animwall", pflag.ContinueOnError)
	fl := config.New()
	addFlags(fs, fl, &options{})
	require.NoError(t, fs.Parse([]string{"--custom_fragment", "fx.wgsl"}))
	assert.Equal(t, "fx.wgsl", fl.CustomFragment)
	assert.True(t, fs.Changed("custom-fragment"))
}

func TestFlagsUsage(t *testing.T) {
	fs := pflag.NewFlagSet("animwall", pflag.ContinueOnError)
	addFlags(fs, config.New(), &options{})
	assert.Equal(t, "playback mode: auto, discrete, continuous", fs.Lookup("mode").Usage)
	assert.Equal(t, "window placement: auto, x11, none", fs.Lookup("placement").Usage)
	assert.Equal(t, "auto", fs.Lookup("placement").DefValue)
}

type countWaker struct {
	wakes atomic.Int32
}

func (w *countWaker) Wake() { w.wakes.Add(1) }

func TestWakeOnDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := &countWaker{}
	stop := wakeOnDone(ctx, w)
	cancel()
	assert.Eventually(t, func() bool { return w.wakes.Load() == 1 }, time.Second, time.Millisecond)
	stop()
	assert.Equal(t, int32(1), w.wakes.Load())
}

func TestWakeOnDoneStopped(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := &countWaker{}
	wakeOnDone(ctx, w)()
	cancel()
	time.Sleep(10 * time.Millisecond)
	assert.Zero(t, w.wakes.Load(), "no wake once stopped, as the platform may be gone")
}

func TestRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.NotNil(t, cmd.Flags().Lookup("custom-fragment"))
	assert.Equal(t, "g", cmd.Flags().Lookup("custom-fragment").Shorthand)
	cmd.SetArgs([]string{"a", "b"})
	assert.Error(t, cmd.Execute())
}
