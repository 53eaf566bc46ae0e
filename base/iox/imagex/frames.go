// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"io"
	"os"
)

// OpenFrames opens the given file and decodes all of its frames as
// fully composited RGBA images. Animated GIF files produce one image
// per frame; any other supported format produces a single image.
// The format is determined from the content of the file.
func OpenFrames(filename string) ([]*image.RGBA, Formats, error) {
	f, err := Sniff(filename)
	if err != nil {
		return nil, None, err
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer file.Close()
	if f == GIF {
		frames, err := ReadGIFFrames(file)
		return frames, f, err
	}
	im, f, err := Read(file)
	if err != nil {
		return nil, f, err
	}
	return []*image.RGBA{AsRGBA(im)}, f, nil
}

// ReadGIFFrames decodes every frame of a GIF, compositing each one onto
// the logical screen according to the disposal method of the frame
// before it. Each returned image has the size of the logical screen.
func ReadGIFFrames(r io.Reader) ([]*image.RGBA, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, err
	}
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("imagex.ReadGIFFrames: no frames")
	}
	screen := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if screen.Empty() {
		for _, fr := range g.Image {
			screen = screen.Union(fr.Bounds())
		}
		screen = image.Rectangle{Max: screen.Max}
	}
	canvas := image.NewRGBA(screen)
	frames := make([]*image.RGBA, len(g.Image))
	for i, fr := range g.Image {
		disposal := byte(0)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		var prev *image.RGBA
		if disposal == gif.DisposalPrevious {
			prev = CloneAsRGBA(canvas)
		}
		draw.Draw(canvas, fr.Bounds(), fr, fr.Bounds().Min, draw.Over)
		frames[i] = CloneAsRGBA(canvas)
		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, fr.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = prev
		}
	}
	return frames, nil
}
