// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of animwall.
package config

import (
	"errors"
	"fmt"

	"cogentcore.org/animwall/base/fsx"
	"cogentcore.org/animwall/base/iox/tomlx"
	"cogentcore.org/animwall/gpu"
	"cogentcore.org/animwall/placement"
	"cogentcore.org/animwall/playback"
)

// Config is the configuration, from defaults, then an optional
// TOML file, then command line flags.
type Config struct {

	// FramePath is the frame source: a directory of images, or
	// an animated image file.
	FramePath string `toml:"frame_path"`

	// FPS is the number of animation frames stepped per second.
	FPS int `toml:"fps"`

	// RenderedFPS is the number of frames rendered per second,
	// interpolating between animation frames.
	RenderedFPS int `toml:"rendered_fps"`

	// CustomFragment is an optional WGSL or GLSL fragment shader file
	// used instead of the built-in cross-fade.
	CustomFragment string `toml:"custom_fragment"`

	// Mode is the playback mode.
	Mode Modes `toml:"mode"`

	// Placement is how windows are placed as backgrounds.
	Placement placement.Kinds `toml:"placement"`

	// PowerPreference chooses the GPU adapter.
	PowerPreference gpu.PowerPreferences `toml:"power_preference"`

	// Debug turns on debug logging.
	Debug bool `toml:"debug"`
}

// Defaults sets the default values.
func (cfg *Config) Defaults() {
	cfg.FPS = 5
	cfg.RenderedFPS = 25
	cfg.Mode = Auto
	cfg.Placement = placement.Auto
	cfg.PowerPreference = gpu.LowPower
}

// New returns a new config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.Defaults()
	return cfg
}

// Open reads the config from the given TOML file, on top
// of the current values.
func (cfg *Config) Open(filename string) error {
	return tomlx.Open(cfg, filename)
}

// Save writes the config to the given TOML file.
func (cfg *Config) Save(filename string) error {
	return tomlx.Save(cfg, filename)
}

// Validate returns an error describing every invalid value.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.FramePath == "" {
		errs = append(errs, errors.New("a frame path is required"))
	}
	if cfg.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, not %d", cfg.FPS))
	}
	if cfg.RenderedFPS <= 0 {
		errs = append(errs, fmt.Errorf("rendered fps must be positive, not %d", cfg.RenderedFPS))
	}
	if cfg.CustomFragment != "" {
		if _, err := gpu.LanguageFromExt(cfg.CustomFragment); err != nil {
			errs = append(errs, err)
		}
		switch ok, err := fsx.FileExists(cfg.CustomFragment); {
		case err != nil:
			errs = append(errs, fmt.Errorf("custom fragment shader: %w", err))
		case !ok:
			errs = append(errs, fmt.Errorf("custom fragment shader %q does not exist", cfg.CustomFragment))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// PlaybackMode returns the playback mode: [Auto] is continuous with
// a custom fragment shader and discrete otherwise.
func (cfg *Config) PlaybackMode() playback.Modes {
	switch cfg.Mode {
	case Discrete:
		return playback.Discrete
	case Continuous:
		return playback.Continuous
	}
	if cfg.CustomFragment != "" {
		return playback.Continuous
	}
	return playback.Discrete
}
