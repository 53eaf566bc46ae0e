// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/animwall/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Device holds a logical device and its queue. There is one
// device shared by the frame array, the pipeline, and all surfaces.
type Device struct {

	// Device is the WebGPU device.
	Device *wgpu.Device

	// Queue is the queue for the device.
	Queue *wgpu.Queue
}

// NewDevice returns a new device for the given GPU,
// requesting the limits supported by its adapter.
func NewDevice(gp *GPU) (*Device, error) {
	wdev, err := gp.Adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "animwall",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: gp.Limits,
		},
	})
	if errors.Log(err) != nil {
		return nil, fmt.Errorf("gpu: requesting device: %w", err)
	}
	return &Device{Device: wdev, Queue: wdev.GetQueue()}, nil
}

// WaitDone waits until the device is idle.
func (dv *Device) WaitDone() {
	if dv.Device == nil {
		return
	}
	dv.Device.Poll(true, nil)
}

// Release releases the queue and the device.
func (dv *Device) Release() {
	if dv.Device == nil {
		return
	}
	dv.WaitDone()
	dv.Queue.Release()
	dv.Queue = nil
	dv.Device.Release()
	dv.Device = nil
}
