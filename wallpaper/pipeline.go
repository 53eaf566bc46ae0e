// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wallpaper

import (
	"embed"
	"fmt"
	"image"
	"log/slog"
	"time"

	"cogentcore.org/animwall/base/fsx"
	"cogentcore.org/animwall/frames"
	"cogentcore.org/animwall/gpu"
	"cogentcore.org/animwall/playback"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed shaders/*.wgsl
var content embed.FS

// Shaders is the file system of the built-in shaders. Custom WGSL
// fragment shaders can include "playback.wgsl" from it.
var Shaders = fsx.Sub(content, "shaders")

// Shader entry points.
const (
	VertexEntry   = "vs_main"
	FragmentEntry = "fs_main"

	// QuadVertices is the number of vertices of the full-screen quad.
	QuadVertices = 6
)

// Options configure a [Pipeline].
type Options struct {

	// FramePath is the frame source: a directory of images
	// or an animated image file.
	FramePath string

	// CustomFragment is an optional fragment shader file
	// replacing the built-in one.
	CustomFragment string

	// Mode is the playback mode.
	Mode playback.Modes

	// FPS is the number of frames stepped per second in discrete mode.
	FPS int

	// RenderedFPS is the number of ticks per second.
	RenderedFPS int

	// Power is the adapter power preference.
	Power gpu.PowerPreferences

	// Now returns the current time for continuous playback.
	// It defaults to [time.Now].
	Now func() time.Time
}

// Pipeline owns the GPU device and every resource shared by the
// displays: the frames, the playback clock with its uniform buffer,
// and the shader program. Each display only has its own [gpu.Surface].
type Pipeline struct {

	// GPU is the adapter.
	GPU *gpu.GPU

	// Device is the logical device and queue.
	Device *gpu.Device

	// Frames holds the frame array.
	Frames *frames.Store

	// Clock is the playback position.
	Clock *playback.Clock

	// Uniforms is the uniform buffer the clock writes into.
	Uniforms *gpu.Buffer

	// Sampler for the frames.
	Sampler *gpu.Sampler

	// Vertex shader of the quad.
	Vertex *gpu.Shader

	// Fragment shader, built-in or custom.
	Fragment *gpu.Shader

	// Program is the render pipeline with its bind group.
	Program *gpu.GraphicsPipeline

	// format is the surface format, fixed by the first target.
	format wgpu.TextureFormat
}

// frameAllocator makes frame arrays as GPU texture arrays.
type frameAllocator struct {
	device *gpu.Device
}

func (fa *frameAllocator) NewFrameArray(size image.Point, layers int) (frames.Array, error) {
	tx, err := gpu.NewTextureArray(fa.device, "frames", size, layers)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// NewPipeline returns a new pipeline: it acquires the GPU, loads
// the frames, and compiles the shaders. Any failure is fatal, and
// whatever was made is released.
func NewPipeline(opts *Options) (*Pipeline, error) {
	pl := &Pipeline{}
	if err := pl.init(opts); err != nil {
		pl.Release()
		return nil, err
	}
	return pl, nil
}

func (pl *Pipeline) init(opts *Options) error {
	var err error
	pl.GPU, err = gpu.NewGPU(opts.Power)
	if err != nil {
		return err
	}
	pl.Device, err = gpu.NewDevice(pl.GPU)
	if err != nil {
		return err
	}
	pl.Frames, err = frames.Load(&frameAllocator{device: pl.Device}, opts.FramePath, frames.Options{
		MaxSize:   pl.GPU.MaxTextureSize(),
		MaxLayers: pl.GPU.MaxTextureLayers(),
	})
	if err != nil {
		return err
	}
	pl.Clock, err = playback.New(opts.Mode, pl.Frames.Count, opts.FPS, opts.RenderedFPS, opts.Now)
	if err != nil {
		return err
	}
	pl.Uniforms, err = gpu.NewUniformBuffer(pl.Device, "playback", playback.UniformsSize)
	if err != nil {
		return err
	}
	if err := pl.SyncUniforms(); err != nil {
		return err
	}
	pl.Sampler = &gpu.Sampler{Name: "frames"}
	pl.Sampler.Defaults()
	if err := pl.Sampler.Config(pl.Device); err != nil {
		return err
	}
	if err := pl.openShaders(opts.CustomFragment); err != nil {
		return err
	}
	pl.Program = gpu.NewGraphicsPipeline("wallpaper", pl.Device)
	pl.Program.SetShaders(pl.Vertex, VertexEntry, pl.Fragment, pl.Fragment.EntryPoint(FragmentEntry))
	tx := pl.Frames.Array.(*gpu.Texture)
	if err := pl.Program.SetBindings(pl.Sampler, tx, pl.Uniforms); err != nil {
		return err
	}
	slog.Info("pipeline ready", "frames", pl.Frames.Count, "size", pl.Frames.Size, "mode", pl.Clock.Mode)
	return nil
}

// openShaders compiles the built-in vertex shader, and the custom
// fragment shader if given, or else the built-in one.
func (pl *Pipeline) openShaders(custom string) error {
	pl.Vertex = gpu.NewShader("quad", pl.Device)
	if err := pl.Vertex.OpenFS(Shaders, "quad.wgsl"); err != nil {
		return err
	}
	pl.Fragment = gpu.NewShader("fragment", pl.Device)
	if custom == "" {
		return pl.Fragment.OpenFS(Shaders, "fragment.wgsl")
	}
	slog.Info("using custom fragment shader", "file", custom)
	if err := pl.Fragment.OpenFile(custom, Shaders); err != nil {
		return fmt.Errorf("custom fragment shader %q: %w", custom, err)
	}
	return nil
}

// Advance moves the playback position forward by one tick.
func (pl *Pipeline) Advance() {
	pl.Clock.Advance()
}

// SyncUniforms writes the current playback position into the uniform
// buffer, ahead of any draw submitted after it. A failure means the
// device is lost.
func (pl *Pipeline) SyncUniforms() error {
	return pl.Clock.Sync(pl.Uniforms)
}

// NewTarget returns a new [gpu.Surface] for the given window, at the
// current size of the window. The first surface fixes the format of
// every surface, and the render pipeline is configured for it.
func (pl *Pipeline) NewTarget(w Window) (Target, error) {
	ws := pl.GPU.CreateSurface(w.SurfaceDescriptor())
	if ws == nil {
		return nil, fmt.Errorf("wallpaper: no GPU surface for window %d", w.ID())
	}
	sf, err := gpu.NewSurface(pl.GPU, pl.Device, ws, w.Size(), pl.format)
	if err != nil {
		return nil, err
	}
	if pl.format == wgpu.TextureFormatUndefined {
		pl.format = sf.Format.Format
		if err := pl.Program.Config(pl.format); err != nil {
			sf.Release()
			pl.format = wgpu.TextureFormatUndefined
			return nil, err
		}
	}
	return sf, nil
}

// Draw clears the given target to black and draws the full-screen
// quad into it with the shared program, then presents it.
func (pl *Pipeline) Draw(t Target) error {
	sf, ok := t.(*gpu.Surface)
	if !ok {
		return fmt.Errorf("wallpaper: cannot draw into %T", t)
	}
	return sf.Draw(pl.Program, QuadVertices)
}

// Release waits for the device to be idle and frees everything.
func (pl *Pipeline) Release() {
	if pl.Device != nil {
		pl.Device.WaitDone()
	}
	if pl.Program != nil {
		pl.Program.Release()
		pl.Program = nil
	}
	if pl.Fragment != nil {
		pl.Fragment.Release()
		pl.Fragment = nil
	}
	if pl.Vertex != nil {
		pl.Vertex.Release()
		pl.Vertex = nil
	}
	if pl.Sampler != nil {
		pl.Sampler.Release()
		pl.Sampler = nil
	}
	if pl.Uniforms != nil {
		pl.Uniforms.Release()
		pl.Uniforms = nil
	}
	if pl.Frames != nil {
		pl.Frames.Release()
		pl.Frames = nil
	}
	if pl.Device != nil {
		pl.Device.Release()
		pl.Device = nil
	}
	if pl.GPU != nil {
		pl.GPU.Release()
		pl.GPU = nil
	}
}
