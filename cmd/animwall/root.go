// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"cogentcore.org/animwall/base/logx"
	"cogentcore.org/animwall/config"
	"cogentcore.org/animwall/desktop"
	"cogentcore.org/animwall/enums"
	"cogentcore.org/animwall/gpu"
	"cogentcore.org/animwall/placement"
	"cogentcore.org/animwall/wallpaper"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// enumValue is a [pflag.Value] for the enums of the config.
type enumValue struct {
	value enums.EnumSetter
	typ   string
}

func (ev *enumValue) String() string     { return ev.value.String() }
func (ev *enumValue) Set(s string) error { return ev.value.SetString(s) }
func (ev *enumValue) Type() string       { return ev.typ }

var _ pflag.Value = &enumValue{}

// enumVar adds a flag for the given enum, listing its values in the usage.
func enumVar(fs *pflag.FlagSet, v enums.EnumSetter, name, usage string) {
	fs.Var(&enumValue{v, name}, name, usage+": "+strings.Join(enums.Strings(v.Values()), ", "))
}

// normalizeFlag accepts the TOML key spelling of a flag,
// as in --rendered_fps for --rendered-fps.
func normalizeFlag(fs *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// options are the values only given on the command line.
type options struct {
	configFile string
	quiet      bool
}

func newRootCmd() *cobra.Command {
	fl := config.New()
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "animwall [flags] <frames>",
		Short: "Play an animation as the desktop background",
		Long: `animwall plays a directory of images, in natural file name order, or an
animated image file as a looping wallpaper on every connected monitor.

Frames are cross-faded at the rendered frame rate. A custom WGSL or GLSL
fragment shader can replace the cross-fade; it is given the seconds since
playback started unless the mode is set to discrete.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags(), fl, opts, args)
			if err != nil {
				return err
			}
			logx.UserLevel = logx.LevelFromFlags(cfg.Debug, opts.quiet)
			logx.SetDefaultLogger()
			return run(cmd.Context(), cfg)
		},
	}
	addFlags(cmd.Flags(), fl, opts)
	return cmd
}

func addFlags(fs *pflag.FlagSet, fl *config.Config, opts *options) {
	fs.SetNormalizeFunc(normalizeFlag)
	fs.StringVarP(&opts.configFile, "config", "c", "", "TOML config file, overridden by flags")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "only log warnings and errors")
	fs.BoolVarP(&fl.Debug, "debug", "d", fl.Debug, "log debugging information")
	fs.IntVarP(&fl.FPS, "fps", "f", fl.FPS, "animation frames per second")
	fs.IntVarP(&fl.RenderedFPS, "rendered-fps", "r", fl.RenderedFPS, "rendered frames per second")
	fs.StringVarP(&fl.CustomFragment, "custom-fragment", "g", fl.CustomFragment, "WGSL or GLSL fragment shader file replacing the cross-fade")
	enumVar(fs, &fl.Mode, "mode", "playback mode")
	enumVar(fs, &fl.Placement, "placement", "window placement")
	enumVar(fs, &fl.PowerPreference, "power", "GPU power preference")
}

// loadConfig returns the config from the defaults, then the config file,
// then the flags that were set, then the frame path argument.
func loadConfig(fs *pflag.FlagSet, fl *config.Config, opts *options, args []string) (*config.Config, error) {
	cfg := config.New()
	if opts.configFile != "" {
		if err := cfg.Open(opts.configFile); err != nil {
			return nil, err
		}
	}
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = fl.Debug
		case "fps":
			cfg.FPS = fl.FPS
		case "rendered-fps":
			cfg.RenderedFPS = fl.RenderedFPS
		case "custom-fragment":
			cfg.CustomFragment = fl.CustomFragment
		case "mode":
			cfg.Mode = fl.Mode
		case "placement":
			cfg.Placement = fl.Placement
		case "power":
			cfg.PowerPreference = fl.PowerPreference
		}
	})
	if len(args) > 0 {
		cfg.FramePath = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run plays the wallpaper until every display is closed
// or the process is interrupted.
func run(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	gpu.Debug = cfg.Debug
	desktop.MonitorDebug = cfg.Debug

	if err := gpu.Init(); err != nil {
		return err
	}
	defer gpu.Terminate()

	events := &wallpaper.EventQueue{}
	placer, err := placement.New(cfg.Placement, events)
	if err != nil {
		return err
	}
	defer placer.Close()

	pl, err := wallpaper.NewPipeline(&wallpaper.Options{
		FramePath:      cfg.FramePath,
		CustomFragment: cfg.CustomFragment,
		Mode:           cfg.PlaybackMode(),
		FPS:            cfg.FPS,
		RenderedFPS:    cfg.RenderedFPS,
		Power:          cfg.PowerPreference,
	})
	if err != nil {
		return err
	}
	defer pl.Release()

	pf := desktop.NewPlatform(events)
	defer wakeOnDone(ctx, pf)()
	app := wallpaper.NewApp(pf, pl, placer, events, cfg.RenderedFPS)
	slog.Info("playing", "frames", cfg.FramePath, "mode", pl.Clock.Mode, "fps", cfg.FPS, "renderedFPS", cfg.RenderedFPS)
	return app.Run(ctx)
}

// waker is woken to stop waiting for events.
type waker interface {
	Wake()
}

// wakeOnDone wakes w when ctx is done, until the returned function
// is called. Once that function returns, w is never woken again,
// so it must be called before w is torn down.
func wakeOnDone(ctx context.Context, w waker) func() {
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Go(func() {
		select {
		case <-ctx.Done():
			w.Wake()
		case <-done:
		}
	})
	return func() {
		close(done)
		wg.Wait()
	}
}
