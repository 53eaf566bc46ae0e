// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/animwall/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Buffer is a uniform buffer on the device, written from the host
// with the Queue WriteBuffer method.
type Buffer struct {

	// Name of the buffer, for debugging.
	Name string

	// Size in bytes.
	Size int

	buffer *wgpu.Buffer

	device *Device
}

// NewUniformBuffer returns a new uniform buffer of the given size in bytes.
func NewUniformBuffer(dev *Device, name string, size int) (*Buffer, error) {
	bf, err := dev.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label:            name,
		Size:             uint64(size),
		Usage:            wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		MappedAtCreation: false,
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	return &Buffer{Name: name, Size: size, buffer: bf, device: dev}, nil
}

// Write writes the given data to the start of the buffer.
// The write is ordered before any later submission on the queue.
func (bf *Buffer) Write(data []byte) error {
	if bf.buffer == nil {
		return fmt.Errorf("gpu.Buffer %q: released", bf.Name)
	}
	if len(data) > bf.Size {
		return fmt.Errorf("gpu.Buffer %q: %d bytes exceeds size %d", bf.Name, len(data), bf.Size)
	}
	return bf.device.Queue.WriteBuffer(bf.buffer, 0, data)
}

// Release frees the buffer.
func (bf *Buffer) Release() {
	if bf.buffer == nil {
		return
	}
	bf.buffer.Release()
	bf.buffer = nil
}
