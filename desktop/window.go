// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

package desktop

import (
	"image"

	"cogentcore.org/animwall/wallpaper"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is the glfw [wallpaper.Window].
type Window struct {
	platform *Platform

	// glw is nil once destroyed.
	glw *glfw.Window

	id wallpaper.WindowID

	mon wallpaper.Monitor
}

func (w *Window) ID() wallpaper.WindowID {
	return w.id
}

func (w *Window) Monitor() wallpaper.Monitor {
	return w.mon
}

// Size returns the framebuffer size, in physical pixels.
func (w *Window) Size() image.Point {
	if w.glw == nil {
		return image.Point{}
	}
	wd, ht := w.glw.GetFramebufferSize()
	return image.Pt(wd, ht)
}

func (w *Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.glw)
}

func (w *Window) Show() {
	if w.glw != nil {
		w.glw.Show()
	}
}

func (w *Window) Destroy() {
	if w.glw == nil {
		return
	}
	delete(w.platform.windows, w.glw)
	w.glw.Destroy()
	w.glw = nil
}

func (w *Window) fbResized(gw *glfw.Window, width, height int) {
	w.platform.Events.Send(wallpaper.Event{Type: wallpaper.ResizeEvent, Window: w.id, Size: image.Pt(width, height)})
}

func (w *Window) closeRequested(gw *glfw.Window) {
	w.platform.Events.Send(wallpaper.Event{Type: wallpaper.CloseEvent, Window: w.id})
}
