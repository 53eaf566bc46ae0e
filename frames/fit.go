// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frames

import (
	"image"
	"runtime"

	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/sync/errgroup"
)

// FitSize returns the size scaled down uniformly so that neither
// dimension exceeds limit. It returns size if it already fits or limit <= 0.
func FitSize(size image.Point, limit int) image.Point {
	if limit <= 0 || (size.X <= limit && size.Y <= limit) {
		return size
	}
	if size.X >= size.Y {
		return image.Pt(limit, max(1, size.Y*limit/size.X))
	}
	return image.Pt(max(1, size.X*limit/size.Y), limit)
}

// Fit scales all frames down to [FitSize] of the first frame, in parallel.
// The frames are returned unchanged if they already fit.
func Fit(frames []*image.RGBA, maxSize int) []*image.RGBA {
	if len(frames) == 0 {
		return frames
	}
	size := frames[0].Rect.Size()
	nsz := FitSize(size, maxSize)
	if nsz == size {
		return frames
	}
	out := make([]*image.RGBA, len(frames))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, fr := range frames {
		g.Go(func() error {
			out[i] = transform.Resize(fr, nsz.X, nsz.Y, transform.Linear)
			return nil
		})
	}
	g.Wait()
	return out
}
