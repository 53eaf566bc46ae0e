// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package playback

import (
	"encoding/binary"
	"math"
)

// UniformsSize is the size in bytes of [Uniforms] on the GPU.
const UniformsSize = 16

// Uniforms are the per-tick values read by the fragment stage,
// laid out to match this WGSL struct:
//
//	struct Playback {
//		frame_count: u32,
//		position: f32,
//		mode: u32,
//		pad: u32,
//	}
type Uniforms struct {

	// FrameCount is the number of layers in the frame array.
	FrameCount uint32

	// Position is the fractional frame position in [Discrete] mode,
	// or the elapsed seconds in [Continuous] mode.
	Position float32

	// Mode is the playback mode.
	Mode Modes
}

// Bytes returns the uniforms in native byte order.
func (u Uniforms) Bytes() []byte {
	b := make([]byte, UniformsSize)
	binary.NativeEndian.PutUint32(b[0:], u.FrameCount)
	binary.NativeEndian.PutUint32(b[4:], math.Float32bits(u.Position))
	binary.NativeEndian.PutUint32(b[8:], uint32(u.Mode))
	return b
}

// Frames returns the two frame indexes blended by the default fragment
// stage and the weight of the second one. In [Continuous] mode the
// position is treated as a frame position at one frame per second.
func (u Uniforms) Frames() (current, next int, mix float32) {
	if u.FrameCount == 0 {
		return 0, 0, 0
	}
	n := float64(u.FrameCount)
	p := math.Mod(float64(u.Position), n)
	if p < 0 {
		p += n
	}
	fl := math.Floor(p)
	current = int(fl) % int(u.FrameCount)
	next = (current + 1) % int(u.FrameCount)
	mix = float32(p - fl)
	return
}
