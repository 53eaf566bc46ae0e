// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"cogentcore.org/animwall/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Sampler specifies how a texture is sampled by shaders.
type Sampler struct {

	// Name of the sampler, for debugging.
	Name string

	// AddressMode for all of U, V, W.
	AddressMode wgpu.AddressMode

	// MagFilter is the filter used when the texture is magnified.
	MagFilter wgpu.FilterMode

	// MinFilter is the filter used when the texture is minified.
	MinFilter wgpu.FilterMode

	sampler *wgpu.Sampler
}

// Defaults sets clamp to edge addressing, nearest magnification,
// and linear minification, so that upscaled frames stay sharp.
func (sm *Sampler) Defaults() {
	sm.AddressMode = wgpu.AddressModeClampToEdge
	sm.MagFilter = wgpu.FilterModeNearest
	sm.MinFilter = wgpu.FilterModeLinear
}

// Config creates the sampler on the given device.
func (sm *Sampler) Config(dev *Device) error {
	sm.Release()
	samp, err := dev.Device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         sm.Name,
		AddressModeU:  sm.AddressMode,
		AddressModeV:  sm.AddressMode,
		AddressModeW:  sm.AddressMode,
		MagFilter:     sm.MagFilter,
		MinFilter:     sm.MinFilter,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		Compare:       wgpu.CompareFunctionUndefined,
		MaxAnisotropy: 1,
	})
	if errors.Log(err) != nil {
		return err
	}
	sm.sampler = samp
	return nil
}

// Release frees the sampler.
func (sm *Sampler) Release() {
	if sm.sampler == nil {
		return
	}
	sm.sampler.Release()
	sm.sampler = nil
}
