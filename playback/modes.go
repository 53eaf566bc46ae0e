// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package playback

//go:generate core generate

// Modes are the playback models. A [Clock] has exactly one mode
// for its whole lifetime.
type Modes int32 //enums:enum -transform lower -accept-lower

const (
	// Discrete steps the position by a fixed fraction of a frame
	// per tick, wrapping at the frame count.
	Discrete Modes = iota

	// Continuous sets the position to the seconds elapsed since
	// playback started. It never wraps.
	Continuous
)
