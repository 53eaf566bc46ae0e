// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// TextureFormat describes the size and WebGPU format of a Texture.
// If Layers > 1, all must be the same size.
type TextureFormat struct {

	// Size of image
	Size image.Point

	// Texture format: RGBA8UnormSrgb is default
	Format wgpu.TextureFormat

	// number of samples, 1 unless multisampling
	Samples int

	// number of layers for texture arrays
	Layers int
}

func (tf *TextureFormat) Defaults() {
	tf.Format = wgpu.TextureFormatRGBA8UnormSrgb
	tf.Samples = 1
	tf.Layers = 1
}

// String returns human-readable version of format
func (tf *TextureFormat) String() string {
	return fmt.Sprintf("Size: %v  Format: %s  MultiSample: %d  Layers: %d", tf.Size, TextureFormatName(tf.Format), tf.Samples, tf.Layers)
}

// Extent3D returns the size and layers as a WebGPU extent.
func (tf *TextureFormat) Extent3D() wgpu.Extent3D {
	return wgpu.Extent3D{
		Width:              uint32(tf.Size.X),
		Height:             uint32(tf.Size.Y),
		DepthOrArrayLayers: uint32(max(1, tf.Layers)),
	}
}

// Bounds returns the rectangle defining this image: 0,0,w,h
func (tf *TextureFormat) Bounds() image.Rectangle {
	return image.Rectangle{Max: tf.Size}
}

// BytesPerPixel returns number of bytes required to represent
// one pixel, or 0 for formats not used here.
func (tf *TextureFormat) BytesPerPixel() int {
	return TextureFormatSizes[tf.Format]
}

// LayerByteSize returns number of bytes required to represent one layer.
func (tf *TextureFormat) LayerByteSize() int {
	return tf.BytesPerPixel() * tf.Size.X * tf.Size.Y
}

// TotalByteSize returns total number of bytes required to represent all layers.
func (tf *TextureFormat) TotalByteSize() int {
	return tf.LayerByteSize() * max(1, tf.Layers)
}

// Stride returns number of bytes per image row.
func (tf *TextureFormat) Stride() int {
	return tf.BytesPerPixel() * tf.Size.X
}

// TextureFormatSizes gives size in bytes of the texture formats
// used for frame arrays and surfaces.
var TextureFormatSizes = map[wgpu.TextureFormat]int{
	wgpu.TextureFormatRGBA8Unorm:     4,
	wgpu.TextureFormatRGBA8UnormSrgb: 4,
	wgpu.TextureFormatBGRA8Unorm:     4,
	wgpu.TextureFormatBGRA8UnormSrgb: 4,
	wgpu.TextureFormatRGBA16Float:    8,
}

// TextureFormatNames gives the names of the texture formats
// used for frame arrays and surfaces.
var TextureFormatNames = map[wgpu.TextureFormat]string{
	wgpu.TextureFormatRGBA8Unorm:     "RGBA8Unorm",
	wgpu.TextureFormatRGBA8UnormSrgb: "RGBA8UnormSrgb",
	wgpu.TextureFormatBGRA8Unorm:     "BGRA8Unorm",
	wgpu.TextureFormatBGRA8UnormSrgb: "BGRA8UnormSrgb",
	wgpu.TextureFormatRGBA16Float:    "RGBA16Float",
}

// TextureFormatName returns the name of the given format.
func TextureFormatName(tf wgpu.TextureFormat) string {
	if nm, ok := TextureFormatNames[tf]; ok {
		return nm
	}
	return fmt.Sprintf("TextureFormat(%d)", uint32(tf))
}

// IsSRGB returns whether the format applies sRGB encoding on write,
// which is what the frames, decoded as sRGB, expect.
func IsSRGB(tf wgpu.TextureFormat) bool {
	return tf == wgpu.TextureFormatRGBA8UnormSrgb || tf == wgpu.TextureFormatBGRA8UnormSrgb
}

// PreferredFormat returns the first sRGB format among the given
// formats, or the first format if there are none. Surfaces list
// their formats in order of preference.
func PreferredFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, f := range formats {
		if IsSRGB(f) {
			return f
		}
	}
	if len(formats) > 0 {
		return formats[0]
	}
	return wgpu.TextureFormatBGRA8UnormSrgb
}
