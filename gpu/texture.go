// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/animwall/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Texture represents a WebGPU Texture with an associated TextureView.
// The WebGPU Texture is in device memory, in an optimized format.
// Textures made by [NewTextureArray] have a 2D array view with one
// layer per image.
type Texture struct {

	// Name of the texture, for debugging.
	Name string

	// Format & size of texture
	Format TextureFormat

	// WebGPU texture handle, in device memory
	texture *wgpu.Texture

	// WebGPU texture view
	view *wgpu.TextureView

	// keep track of device for writing and destroying
	device *Device
}

// NewTexture returns a new texture on the given device, with
// default format, not yet created.
func NewTexture(dev *Device) *Texture {
	tx := &Texture{device: dev}
	tx.Format.Defaults()
	return tx
}

// NewTextureArray returns a new RGBA8UnormSrgb texture array of the given
// number of layers of the given size, created on the device and ready
// for [Texture.SetLayer].
func NewTextureArray(dev *Device, name string, size image.Point, layers int) (*Texture, error) {
	tx := NewTexture(dev)
	tx.Name = name
	tx.Format.Size = size
	tx.Format.Layers = max(1, layers)
	if err := tx.CreateTexture(wgpu.TextureUsageTextureBinding|wgpu.TextureUsageCopyDst, wgpu.TextureViewDimension2DArray); err != nil {
		return nil, err
	}
	slog.Debug("created texture array", "name", name, "format", tx.Format.String(), "bytes", tx.Format.TotalByteSize())
	return tx, nil
}

// CreateTexture creates the texture based on current settings,
// and a view of that texture with the given dimension.
// Calls release first.
func (tx *Texture) CreateTexture(usage wgpu.TextureUsage, dim wgpu.TextureViewDimension) error {
	tx.Release()
	t, err := tx.device.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         tx.Name,
		Size:          tx.Format.Extent3D(),
		MipLevelCount: 1,
		SampleCount:   uint32(max(1, tx.Format.Samples)),
		Dimension:     wgpu.TextureDimension2D,
		Format:        tx.Format.Format,
		Usage:         usage,
	})
	if errors.Log(err) != nil {
		return err
	}
	tx.texture = t
	vw, err := t.CreateView(&wgpu.TextureViewDescriptor{
		Label:           tx.Name,
		Format:          tx.Format.Format,
		Dimension:       dim,
		BaseMipLevel:    0,
		MipLevelCount:   1,
		BaseArrayLayer:  0,
		ArrayLayerCount: uint32(max(1, tx.Format.Layers)),
		Aspect:          wgpu.TextureAspectAll,
	})
	if errors.Log(err) != nil {
		tx.Release()
		return err
	}
	tx.view = vw
	return nil
}

// SetLayer uploads the given image to the given layer of the texture.
// The image must be the size of the texture.
func (tx *Texture) SetLayer(layer int, img *image.RGBA) error {
	if tx.texture == nil {
		return fmt.Errorf("gpu.Texture %q: not created", tx.Name)
	}
	if layer < 0 || layer >= tx.Format.Layers {
		return fmt.Errorf("gpu.Texture %q: layer %d out of range [0, %d)", tx.Name, layer, tx.Format.Layers)
	}
	sz := img.Rect.Size()
	if sz != tx.Format.Size {
		return fmt.Errorf("gpu.Texture %q: image size %v does not match texture size %v", tx.Name, sz, tx.Format.Size)
	}
	stride := tx.Format.Stride()
	if img.Stride != stride {
		return fmt.Errorf("gpu.Texture %q: image stride %d does not match texture row size %d", tx.Name, img.Stride, stride)
	}
	size := tx.Format.Extent3D()
	size.DepthOrArrayLayers = 1
	// https://www.w3.org/TR/webgpu/#gpuimagecopytexture
	tx.device.Queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Aspect:   wgpu.TextureAspectAll,
			Texture:  tx.texture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{X: 0, Y: 0, Z: uint32(layer)},
		},
		img.Pix,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(stride),
			RowsPerImage: uint32(sz.Y),
		},
		&size,
	)
	return nil
}

// View returns the texture view.
func (tx *Texture) View() *wgpu.TextureView {
	return tx.view
}

// ReleaseView destroys any existing view
func (tx *Texture) ReleaseView() {
	if tx.view == nil {
		return
	}
	tx.view.Release()
	tx.view = nil
}

// Release frees the view and the device texture.
func (tx *Texture) Release() {
	tx.ReleaseView()
	if tx.texture == nil {
		return
	}
	tx.texture.Release()
	tx.texture = nil
}
