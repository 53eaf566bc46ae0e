// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frames provides the frame store: it decodes a frame source,
// either a directory of still images or an animated image file,
// into equally sized RGBA frames and uploads them as the layers
// of one frame array.
package frames

//go:generate core generate

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"cogentcore.org/animwall/base/fsx"
	"cogentcore.org/animwall/base/iox/imagex"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrNoFrames is returned when a frame source has no frames.
	ErrNoFrames = errors.New("frames: no frames found")

	// ErrSizeMismatch is returned when a frame differs in size
	// from the first frame.
	ErrSizeMismatch = errors.New("frames: frame size differs from the first frame")

	// ErrTooManyFrames is returned when there are more frames
	// than the frame array can hold.
	ErrTooManyFrames = errors.New("frames: too many frames")
)

// Kinds are the kinds of frame source.
type Kinds int32 //enums:enum -transform lower

const (
	// Directory is a directory of still images.
	Directory Kinds = iota

	// Animation is a single, possibly animated, image file.
	Animation
)

// KindOf returns the kind of frame source at the given path.
func KindOf(path string) (Kinds, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Directory, fmt.Errorf("frames: %w", err)
	}
	switch {
	case fi.IsDir():
		return Directory, nil
	case fi.Mode().IsRegular():
		return Animation, nil
	}
	return Directory, fmt.Errorf("frames: %q is neither a directory nor a regular file", path)
}

// Decode decodes all of the frames of the frame source at the given path.
func Decode(path string) ([]*image.RGBA, Kinds, error) {
	kind, err := KindOf(path)
	if err != nil {
		return nil, kind, err
	}
	var frames []*image.RGBA
	if kind == Directory {
		frames, err = DecodeDir(path)
	} else {
		frames, err = DecodeAnimation(path)
	}
	return frames, kind, err
}

// DecodeDir decodes every file in the given directory in parallel,
// ordered by natural file name order. Hidden files and subdirectories
// are skipped. Any file that fails to decode fails the whole directory.
func DecodeDir(dir string) ([]*image.RGBA, error) {
	names, err := Files(dir)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoFrames, dir)
	}
	frames := make([]*image.RGBA, len(names))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, nm := range names {
		g.Go(func() error {
			fn := filepath.Join(dir, nm)
			img, _, err := imagex.Open(fn)
			if err != nil {
				return fmt.Errorf("frames: decoding %q: %w", fn, err)
			}
			frames[i] = imagex.AsRGBA(img)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := CheckSizes(frames, names); err != nil {
		return nil, err
	}
	return frames, nil
}

// Files returns the names of the frame files in the given directory,
// in natural order.
func Files(dir string) ([]string, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("frames: %w", err)
	}
	var names []string
	for _, e := range ents {
		if e.IsDir() || fsx.IsHidden(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	SortNatural(names)
	return names, nil
}

// DecodeAnimation decodes all of the frames of the given image file.
// Animated GIF files yield every composited frame, and still images
// yield one frame.
func DecodeAnimation(filename string) ([]*image.RGBA, error) {
	frames, _, err := imagex.OpenFrames(filename)
	if err != nil {
		return nil, fmt.Errorf("frames: decoding %q: %w", filename, err)
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoFrames, filename)
	}
	if err := CheckSizes(frames, nil); err != nil {
		return nil, err
	}
	return frames, nil
}

// CheckSizes returns an error if any frame differs in size from the first.
// The optional names are used to identify the offending frame.
func CheckSizes(frames []*image.RGBA, names []string) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	size := frames[0].Rect.Size()
	for i, fr := range frames[1:] {
		sz := fr.Rect.Size()
		if sz == size {
			continue
		}
		id := fmt.Sprintf("frame %d", i+1)
		if i+1 < len(names) {
			id = names[i+1]
		}
		return fmt.Errorf("%w: %s is %v, expected %v", ErrSizeMismatch, id, sz, size)
	}
	return nil
}

// logLoad logs the completion of loading the given number of frames.
func logLoad(path string, kind Kinds, n int, size image.Point, start time.Time) {
	slog.Info("frames loaded", "path", path, "kind", kind, "count", n, "size", size, "took", time.Since(start).Round(time.Millisecond))
}
