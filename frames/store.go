// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frames

import (
	"fmt"
	"image"
	"log/slog"
	"time"
)

// Array is a frame array, with one layer per frame.
type Array interface {

	// SetLayer uploads the given frame as the given layer.
	SetLayer(layer int, img *image.RGBA) error

	// Release frees the array.
	Release()
}

// Allocator makes frame arrays.
type Allocator interface {

	// NewFrameArray returns a new array of the given number of
	// layers of the given size.
	NewFrameArray(size image.Point, layers int) (Array, error)
}

// Options are limits on the frames loaded into a [Store],
// typically those of the device holding the array.
type Options struct {

	// MaxSize is the largest allowed frame width or height.
	// Larger frames are uniformly scaled down to fit. Zero means no limit.
	MaxSize int

	// MaxLayers is the largest number of frames. Zero means no limit.
	MaxLayers int
}

// Store holds the frames of a frame source in a frame array.
// It is immutable once loaded.
type Store struct {

	// Path is the frame source path.
	Path string

	// Kind is the kind of frame source.
	Kind Kinds

	// Size of each frame.
	Size image.Point

	// Count is the number of frames.
	Count int

	// Array holds the frames, one per layer.
	Array Array
}

// Load decodes all of the frames at the given path and uploads them
// to a new frame array made by the given allocator. Nothing is
// allocated unless every frame decodes and the frames are valid.
func Load(al Allocator, path string, opts Options) (*Store, error) {
	start := time.Now()
	slog.Debug("loading frames", "path", path)
	frames, kind, err := Decode(path)
	if err != nil {
		return nil, err
	}
	if opts.MaxLayers > 0 && len(frames) > opts.MaxLayers {
		return nil, fmt.Errorf("%w: %d frames in %q, the device supports %d", ErrTooManyFrames, len(frames), path, opts.MaxLayers)
	}
	if nsz := FitSize(frames[0].Rect.Size(), opts.MaxSize); nsz != frames[0].Rect.Size() {
		slog.Warn("scaling frames down to fit the device", "from", frames[0].Rect.Size(), "to", nsz)
		frames = Fit(frames, opts.MaxSize)
	}
	st := &Store{Path: path, Kind: kind, Size: frames[0].Rect.Size(), Count: len(frames)}
	st.Array, err = al.NewFrameArray(st.Size, st.Count)
	if err != nil {
		return nil, fmt.Errorf("frames: allocating %d frames of %v: %w", st.Count, st.Size, err)
	}
	for i, fr := range frames {
		if err := st.Array.SetLayer(i, fr); err != nil {
			st.Release()
			return nil, fmt.Errorf("frames: uploading frame %d: %w", i, err)
		}
	}
	logLoad(path, kind, st.Count, st.Size, start)
	return st, nil
}

// Release frees the frame array.
func (st *Store) Release() {
	if st.Array == nil {
		return
	}
	st.Array.Release()
	st.Array = nil
}
