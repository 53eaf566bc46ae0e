// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image/color"

	"cogentcore.org/animwall/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Render manages the parameters of a render pass onto a texture view,
// and the command encoder recording it.
type Render struct {

	// values for clearing image when starting render pass
	ClearColor color.Color

	device *Device
}

// NewRender returns a new Render for the given device,
// clearing to black.
func NewRender(dev *Device) *Render {
	return &Render{ClearColor: color.Black, device: dev}
}

// ClearRenderPass returns a render pass descriptor that clears the framebuffer
func (rd *Render) ClearRenderPass(view *wgpu.TextureView) *wgpu.RenderPassDescriptor {
	r, g, b, a := rd.ClearColor.RGBA()
	return &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:   view,
			LoadOp: wgpu.LoadOpClear,
			ClearValue: wgpu.Color{
				R: float64(r) / 0xffff,
				G: float64(g) / 0xffff,
				B: float64(b) / 0xffff,
				A: float64(a) / 0xffff,
			},
			StoreOp: wgpu.StoreOpStore,
		}},
	}
}

// BeginRenderPass creates a command encoder and starts a render pass
// on it that clears the given view. Call [Render.SubmitRender] when done.
func (rd *Render) BeginRenderPass(view *wgpu.TextureView) (*wgpu.CommandEncoder, *wgpu.RenderPassEncoder, error) {
	cmd, err := rd.device.Device.CreateCommandEncoder(nil)
	if errors.Log(err) != nil {
		return nil, nil, err
	}
	return cmd, cmd.BeginRenderPass(rd.ClearRenderPass(view)), nil
}

// SubmitRender ends the given render pass, and submits the commands of
// the encoder to the device queue, releasing both.
func (rd *Render) SubmitRender(cmd *wgpu.CommandEncoder, rp *wgpu.RenderPassEncoder) error {
	defer cmd.Release()
	rp.End()
	rp.Release() // must happen before Finish
	cmdBuffer, err := cmd.Finish(nil)
	if errors.Log(err) != nil {
		return err
	}
	rd.device.Queue.Submit(cmdBuffer)
	cmdBuffer.Release()
	return nil
}
