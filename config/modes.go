// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

//go:generate core generate

// Modes are the configured playback modes.
type Modes int32 //enums:enum -transform lower -accept-lower

const (
	// Auto is [Continuous] with a custom fragment shader,
	// and [Discrete] otherwise.
	Auto Modes = iota

	// Discrete steps through the frames at a fixed rate.
	Discrete

	// Continuous gives the shader the seconds since playback started.
	Continuous
)
