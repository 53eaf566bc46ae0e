// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu is a thin layer over WebGPU providing the objects needed
// to draw a full-screen quad from a texture array onto window surfaces:
// the GPU and device roots, textures, uniform buffers, shaders, a
// graphics pipeline with a fixed bind group, and surfaces.
package gpu

//go:generate core generate

import (
	"fmt"
	"log/slog"

	"cogentcore.org/animwall/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Debug is whether to enable debug mode, getting
// more diagnostic output about GPU configuration.
var Debug = false

// PowerPreferences are the adapter power preferences.
type PowerPreferences int32 //enums:enum -transform kebab -accept-lower

const (
	// LowPower prefers an integrated or otherwise power saving adapter.
	LowPower PowerPreferences = iota

	// HighPerformance prefers a discrete adapter.
	HighPerformance
)

// WebGPU returns the corresponding WebGPU power preference.
func (pp PowerPreferences) WebGPU() wgpu.PowerPreference {
	if pp == HighPerformance {
		return wgpu.PowerPreferenceHighPerformance
	}
	return wgpu.PowerPreferenceLowPower
}

// GPU represents the GPU hardware: the WebGPU instance and the
// adapter chosen from it. It is the root of all other GPU objects
// and is passed explicitly to everything that needs it.
type GPU struct {

	// Instance is the WebGPU instance.
	Instance *wgpu.Instance

	// Adapter is the chosen hardware adapter.
	Adapter *wgpu.Adapter

	// Limits are the limits supported by the adapter,
	// which are requested for every device.
	Limits wgpu.Limits

	// PowerPreference used to choose the adapter.
	PowerPreference PowerPreferences
}

// NewGPU returns a new GPU, with an adapter chosen according
// to the given power preference.
func NewGPU(pref PowerPreferences) (*GPU, error) {
	gp := &GPU{PowerPreference: pref}
	if err := gp.init(); err != nil {
		gp.Release()
		return nil, err
	}
	return gp, nil
}

func (gp *GPU) init() error {
	gp.Instance = wgpu.CreateInstance(nil)
	ad, err := gp.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: gp.PowerPreference.WebGPU(),
	})
	if errors.Log(err) != nil {
		return fmt.Errorf("gpu: requesting adapter: %w", err)
	}
	gp.Adapter = ad
	gp.Limits = ad.GetLimits().Limits
	if Debug {
		slog.Debug("gpu adapter", "power", gp.PowerPreference, "maxTextureDimension2D", gp.Limits.MaxTextureDimension2D, "maxTextureArrayLayers", gp.Limits.MaxTextureArrayLayers)
	}
	return nil
}

// MaxTextureSize returns the largest 2D texture width or height.
func (gp *GPU) MaxTextureSize() int {
	return int(gp.Limits.MaxTextureDimension2D)
}

// MaxTextureLayers returns the largest number of texture array layers.
func (gp *GPU) MaxTextureLayers() int {
	return int(gp.Limits.MaxTextureArrayLayers)
}

// CreateSurface returns a new WebGPU surface for the given
// platform descriptor, typically from a window.
func (gp *GPU) CreateSurface(desc *wgpu.SurfaceDescriptor) *wgpu.Surface {
	return gp.Instance.CreateSurface(desc)
}

// Release releases the adapter and instance.
func (gp *GPU) Release() {
	if gp.Adapter != nil {
		gp.Adapter.Release()
		gp.Adapter = nil
	}
	if gp.Instance != nil {
		gp.Instance.Release()
		gp.Instance = nil
	}
}
