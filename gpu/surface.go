// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// Surface manages the presentable swap target of one window.
// Its size follows the window; everything drawn into it comes from
// resources shared by all surfaces on the same device.
type Surface struct {

	// Format has the current texture format and size.
	Format TextureFormat

	// PresentMode is Fifo by default, which waits for vertical sync.
	PresentMode wgpu.PresentMode

	// Render for drawing into the surface textures.
	Render *Render

	surface *wgpu.Surface

	gpu *GPU

	device *Device

	configured bool

	curTexture *wgpu.Texture
}

// NewSurface returns a new surface for the given WebGPU surface, of the
// given size. If format is zero, the surface's preferred sRGB format is used.
// The surface takes ownership of ws.
func NewSurface(gp *GPU, dev *Device, ws *wgpu.Surface, size image.Point, format wgpu.TextureFormat) (*Surface, error) {
	sf := &Surface{gpu: gp, device: dev, surface: ws, PresentMode: wgpu.PresentModeFifo}
	sf.Format.Defaults()
	sf.Format.Size = size
	if format == wgpu.TextureFormatUndefined {
		format = sf.PreferredFormat()
	}
	sf.Format.Format = format
	sf.Render = NewRender(dev)
	if err := sf.Configure(); err != nil {
		sf.Release()
		return nil, err
	}
	return sf, nil
}

// PreferredFormat returns the preferred sRGB format of the surface
// on our adapter.
func (sf *Surface) PreferredFormat() wgpu.TextureFormat {
	caps := sf.surface.GetCapabilities(sf.gpu.Adapter)
	return PreferredFormat(caps.Formats)
}

// Configure configures the surface for the current format and size.
func (sf *Surface) Configure() error {
	if sf.Format.Size.X <= 0 || sf.Format.Size.Y <= 0 {
		return fmt.Errorf("gpu.Surface: invalid size %v", sf.Format.Size)
	}
	sf.surface.Configure(sf.gpu.Adapter, sf.device.Device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      sf.Format.Format,
		Width:       uint32(sf.Format.Size.X),
		Height:      uint32(sf.Format.Size.Y),
		PresentMode: sf.PresentMode,
		AlphaMode:   wgpu.CompositeAlphaModeAuto,
	})
	sf.configured = true
	if Debug {
		slog.Debug("gpu.Surface configured", "format", sf.Format.String())
	}
	return nil
}

// Size returns the current size of the surface.
func (sf *Surface) Size() image.Point {
	return sf.Format.Size
}

// SetSize reconfigures the surface for the given size.
// It does nothing if the size is unchanged, and returns false.
func (sf *Surface) SetSize(size image.Point) (bool, error) {
	if sf.Format.Size == size && sf.configured {
		return false, nil
	}
	sf.Format.Size = size
	return true, sf.Configure()
}

// GetCurrentTexture acquires the next texture of the surface,
// returning a view of it. The texture is held until [Surface.Present].
func (sf *Surface) GetCurrentTexture() (*wgpu.TextureView, error) {
	tex, err := sf.surface.GetCurrentTexture()
	if err != nil {
		return nil, fmt.Errorf("gpu.Surface: acquiring texture: %w", err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, fmt.Errorf("gpu.Surface: texture view: %w", err)
	}
	sf.curTexture = tex
	return view, nil
}

// Draw draws the given number of vertices, one instance, with the
// given pipeline into the next texture of the surface, and presents it.
func (sf *Surface) Draw(pl *GraphicsPipeline, vertices int) error {
	view, err := sf.GetCurrentTexture()
	if err != nil {
		return err
	}
	defer view.Release()
	cmd, rp, err := sf.Render.BeginRenderPass(view)
	if err != nil {
		sf.releaseCurrent()
		return err
	}
	if err := pl.BindPipeline(rp); err != nil {
		rp.End()
		rp.Release()
		cmd.Release()
		sf.releaseCurrent()
		return err
	}
	rp.Draw(uint32(vertices), 1, 0, 0)
	if err := sf.Render.SubmitRender(cmd, rp); err != nil {
		sf.releaseCurrent()
		return err
	}
	sf.Present()
	return nil
}

// Present presents the current texture and releases it.
func (sf *Surface) Present() {
	sf.surface.Present()
	sf.releaseCurrent()
}

func (sf *Surface) releaseCurrent() {
	if sf.curTexture == nil {
		return
	}
	sf.curTexture.Release()
	sf.curTexture = nil
}

// Release frees the surface. The device and GPU are shared
// and not released.
func (sf *Surface) Release() {
	sf.releaseCurrent()
	if sf.surface == nil {
		return
	}
	sf.configured = false
	sf.surface.Release()
	sf.surface = nil
}
