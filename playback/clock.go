// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package playback provides the playback position state machine
// that drives which frames are shown, and the tick schedule that
// advances it.
package playback

import (
	"errors"
	"fmt"
	"time"
)

// UniformWriter receives serialized [Uniforms]. It is implemented
// by the uniform buffer on the GPU.
type UniformWriter interface {
	Write(data []byte) error
}

// Clock is the single source of truth for the playback position.
// It is not safe for concurrent use: Advance is called once per
// tick from the main loop.
type Clock struct {

	// Mode is fixed when the clock is made.
	Mode Modes

	// FrameCount is the number of frames being played.
	FrameCount int

	// FPS is the number of frames stepped per second in [Discrete] mode.
	FPS int

	// RenderedFPS is the number of ticks per second.
	RenderedFPS int

	// num is the discrete position scaled by RenderedFPS,
	// kept in [0, FrameCount*RenderedFPS).
	num int64

	// start is the continuous playback start time.
	start time.Time

	// seconds is the continuous position as of the last Advance.
	seconds float64

	// now returns the current time.
	now func() time.Time
}

// NewDiscrete returns a [Discrete] clock that steps fps/renderedFPS
// frames per tick through count frames.
func NewDiscrete(count, fps, renderedFPS int) (*Clock, error) {
	if count <= 0 {
		return nil, errors.New("playback: frame count must be positive")
	}
	if fps < 0 || renderedFPS <= 0 {
		return nil, fmt.Errorf("playback: invalid rates %d/%d", fps, renderedFPS)
	}
	return &Clock{Mode: Discrete, FrameCount: count, FPS: fps, RenderedFPS: renderedFPS}, nil
}

// NewContinuous returns a [Continuous] clock starting now. The now function
// is used to read the time; it defaults to [time.Now] if nil.
func NewContinuous(count int, now func() time.Time) (*Clock, error) {
	if count <= 0 {
		return nil, errors.New("playback: frame count must be positive")
	}
	if now == nil {
		now = time.Now
	}
	return &Clock{Mode: Continuous, FrameCount: count, start: now(), now: now}, nil
}

// New returns a clock for the given mode.
func New(mode Modes, count, fps, renderedFPS int, now func() time.Time) (*Clock, error) {
	switch mode {
	case Discrete:
		return NewDiscrete(count, fps, renderedFPS)
	case Continuous:
		return NewContinuous(count, now)
	}
	return nil, fmt.Errorf("playback: unknown mode %v", mode)
}

// Advance moves the position forward by one tick.
func (cl *Clock) Advance() {
	switch cl.Mode {
	case Discrete:
		period := int64(cl.FrameCount) * int64(cl.RenderedFPS)
		cl.num = (cl.num + int64(cl.FPS)) % period
	case Continuous:
		s := cl.now().Sub(cl.start).Seconds()
		if s > cl.seconds {
			cl.seconds = s
		}
	}
}

// Position returns the current position: fractional frames
// for [Discrete], seconds for [Continuous].
func (cl *Clock) Position() float64 {
	if cl.Mode == Continuous {
		return cl.seconds
	}
	return float64(cl.num) / float64(cl.RenderedFPS)
}

// Uniforms returns the current uniform values.
func (cl *Clock) Uniforms() Uniforms {
	return Uniforms{FrameCount: uint32(cl.FrameCount), Position: float32(cl.Position()), Mode: cl.Mode}
}

// Sync writes the current uniform values to the given writer.
func (cl *Clock) Sync(w UniformWriter) error {
	if err := w.Write(cl.Uniforms().Bytes()); err != nil {
		return fmt.Errorf("playback: writing uniforms: %w", err)
	}
	return nil
}
