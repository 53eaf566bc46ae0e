// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"errors"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// Bindings of the single bind group (group 0) used by every
// [GraphicsPipeline].
const (
	// SamplerBinding is the sampler.
	SamplerBinding = 0

	// TextureBinding is the 2D array texture.
	TextureBinding = 1

	// UniformBinding is the uniform buffer.
	UniformBinding = 2
)

// GraphicsPipeline is a render pipeline drawing without vertex buffers,
// with one bind group holding a sampler, a 2D array texture, and a
// uniform buffer, all visible to the fragment stage.
type GraphicsPipeline struct {

	// Name of the pipeline, for debugging.
	Name string

	// Primitive has topology, vertex ordering, and culling.
	Primitive wgpu.PrimitiveState

	// Multisample state.
	Multisample wgpu.MultisampleState

	// Format of the color target.
	Format wgpu.TextureFormat

	// Vertex is the shader with the vertex entry point.
	Vertex *Shader

	// VertexEntry is the vertex entry point.
	VertexEntry string

	// Fragment is the shader with the fragment entry point.
	Fragment *Shader

	// FragmentEntry is the fragment entry point.
	FragmentEntry string

	device *Device

	bindGroupLayout *wgpu.BindGroupLayout

	bindGroup *wgpu.BindGroup

	layout *wgpu.PipelineLayout

	renderPipeline *wgpu.RenderPipeline
}

// NewGraphicsPipeline returns a new GraphicsPipeline with graphics defaults.
func NewGraphicsPipeline(name string, dev *Device) *GraphicsPipeline {
	pl := &GraphicsPipeline{Name: name, device: dev}
	pl.SetGraphicsDefaults()
	return pl
}

// SetGraphicsDefaults sets a triangle list with no culling,
// and a single sample.
func (pl *GraphicsPipeline) SetGraphicsDefaults() *GraphicsPipeline {
	pl.Primitive.Topology = wgpu.PrimitiveTopologyTriangleList
	pl.SetFrontFace(wgpu.FrontFaceCCW)
	pl.SetCullMode(wgpu.CullModeNone)
	pl.SetMultisample(1)
	return pl
}

// SetFrontFace sets the winding order for what counts as a front face.
func (pl *GraphicsPipeline) SetFrontFace(face wgpu.FrontFace) *GraphicsPipeline {
	pl.Primitive.FrontFace = face
	return pl
}

// SetCullMode sets the face culling mode.
func (pl *GraphicsPipeline) SetCullMode(mode wgpu.CullMode) *GraphicsPipeline {
	pl.Primitive.CullMode = mode
	return pl
}

// SetMultisample sets the number of samples.
func (pl *GraphicsPipeline) SetMultisample(ms int) *GraphicsPipeline {
	pl.Multisample.Count = uint32(max(1, ms))
	pl.Multisample.Mask = 0xFFFFFFFF
	pl.Multisample.AlphaToCoverageEnabled = false
	return pl
}

// SetShaders sets the vertex and fragment shaders and entry points.
func (pl *GraphicsPipeline) SetShaders(vertex *Shader, vertexEntry string, fragment *Shader, fragmentEntry string) *GraphicsPipeline {
	pl.Vertex, pl.VertexEntry = vertex, vertexEntry
	pl.Fragment, pl.FragmentEntry = fragment, fragmentEntry
	return pl
}

// SetBindings creates the bind group layout and the bind group
// for the given sampler, texture array, and uniform buffer.
// It must be called before [GraphicsPipeline.Config].
func (pl *GraphicsPipeline) SetBindings(sm *Sampler, tx *Texture, bf *Buffer) error {
	if sm.sampler == nil || tx.view == nil || bf.buffer == nil {
		return errors.New("gpu.GraphicsPipeline: bindings must be configured first")
	}
	pl.releaseBindings()
	dev := pl.device.Device
	bgl, err := dev.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: pl.Name,
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    SamplerBinding,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
			{
				Binding:    TextureBinding,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2DArray,
					Multisampled:  false,
				},
			},
			{
				Binding:    UniformBinding,
				Visibility: wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64(bf.Size),
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("gpu.GraphicsPipeline %q: bind group layout: %w", pl.Name, err)
	}
	pl.bindGroupLayout = bgl
	bg, err := dev.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  pl.Name,
		Layout: bgl,
		Entries: []wgpu.BindGroupEntry{
			{Binding: SamplerBinding, Sampler: sm.sampler},
			{Binding: TextureBinding, TextureView: tx.view},
			{Binding: UniformBinding, Buffer: bf.buffer, Offset: 0, Size: uint64(bf.Size)},
		},
	})
	if err != nil {
		return fmt.Errorf("gpu.GraphicsPipeline %q: bind group: %w", pl.Name, err)
	}
	pl.bindGroup = bg
	return nil
}

// Config creates the render pipeline for the given color target format.
// It is a no-op if the pipeline already exists for that format.
func (pl *GraphicsPipeline) Config(format wgpu.TextureFormat) error {
	if pl.renderPipeline != nil && pl.Format == format {
		return nil
	}
	if pl.bindGroupLayout == nil {
		return errors.New("gpu.GraphicsPipeline: SetBindings must be called before Config")
	}
	if pl.Vertex == nil || pl.Fragment == nil {
		return errors.New("gpu.GraphicsPipeline: shaders are not set")
	}
	pl.ReleasePipeline()
	pl.Format = format
	lay, err := pl.device.Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            pl.Name,
		BindGroupLayouts: []*wgpu.BindGroupLayout{pl.bindGroupLayout},
	})
	if err != nil {
		return fmt.Errorf("gpu.GraphicsPipeline %q: layout: %w", pl.Name, err)
	}
	pl.layout = lay
	rp, err := pl.device.Device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  pl.Name,
		Layout: pl.layout,
		Vertex: wgpu.VertexState{
			Module:     pl.Vertex.module,
			EntryPoint: pl.VertexEntry,
		},
		Primitive:   pl.Primitive,
		Multisample: pl.Multisample,
		Fragment: &wgpu.FragmentState{
			Module:     pl.Fragment.module,
			EntryPoint: pl.FragmentEntry,
			Targets: []wgpu.ColorTargetState{{
				Format:    format,
				Blend:     &wgpu.BlendStateReplace,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("gpu.GraphicsPipeline %q: %w", pl.Name, err)
	}
	pl.renderPipeline = rp
	return nil
}

// BindPipeline binds the pipeline and its bind group to the render pass.
func (pl *GraphicsPipeline) BindPipeline(rp *wgpu.RenderPassEncoder) error {
	if pl.renderPipeline == nil {
		return fmt.Errorf("gpu.GraphicsPipeline %q: not configured", pl.Name)
	}
	rp.SetPipeline(pl.renderPipeline)
	rp.SetBindGroup(0, pl.bindGroup, nil) // note: nil is dynamic offsets
	return nil
}

// ReleasePipeline frees the render pipeline and its layout.
func (pl *GraphicsPipeline) ReleasePipeline() {
	if pl.layout != nil {
		pl.layout.Release()
		pl.layout = nil
	}
	if pl.renderPipeline != nil {
		pl.renderPipeline.Release()
		pl.renderPipeline = nil
	}
}

func (pl *GraphicsPipeline) releaseBindings() {
	if pl.bindGroup != nil {
		pl.bindGroup.Release()
		pl.bindGroup = nil
	}
	if pl.bindGroupLayout != nil {
		pl.bindGroupLayout.Release()
		pl.bindGroupLayout = nil
	}
}

// Release frees everything owned by the pipeline. The shaders are
// owned by the caller.
func (pl *GraphicsPipeline) Release() {
	pl.ReleasePipeline()
	pl.releaseBindings()
}
