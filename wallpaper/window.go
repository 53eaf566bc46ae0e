// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wallpaper

import (
	"fmt"
	"image"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
)

// WindowID identifies a platform window for its whole lifetime.
// Displays are matched by window identity, not by monitor.
type WindowID uint64

// MonitorID identifies a monitor from when it is connected until it
// is disconnected. Names are not unique: monitors of the same model
// can have the same name.
type MonitorID uint64

// Monitor is a connected monitor.
type Monitor struct {

	// ID identifies the monitor among those connected.
	ID MonitorID

	// Name is the human readable name of the monitor.
	Name string

	// Position of the monitor in the virtual screen, in pixels.
	Position image.Point

	// Size is the physical resolution in pixels.
	Size image.Point
}

// Bounds returns the monitor rectangle in the virtual screen.
func (mon Monitor) Bounds() image.Rectangle {
	return image.Rectangle{Min: mon.Position, Max: mon.Position.Add(mon.Size)}
}

func (mon Monitor) String() string {
	return fmt.Sprintf("%s %dx%d+%d+%d", mon.Name, mon.Size.X, mon.Size.Y, mon.Position.X, mon.Position.Y)
}

// Window is a shell-less platform window covering one monitor.
type Window interface {

	// ID returns the identity of the window.
	ID() WindowID

	// Monitor returns the monitor the window was made for.
	Monitor() Monitor

	// Size returns the current framebuffer size in pixels.
	Size() image.Point

	// SurfaceDescriptor returns the descriptor for making
	// a GPU surface for the window.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Show maps the window, after it has been placed.
	Show()

	// Destroy closes the window. It is safe to call more than once.
	Destroy()
}

// Platform is the windowing system.
type Platform interface {

	// Monitors returns the currently connected monitors.
	Monitors() []Monitor

	// NewWindow returns a new hidden, undecorated window that does
	// not take focus or input, sized and positioned to cover
	// the given monitor.
	NewWindow(mon Monitor) (Window, error)

	// WaitEvents processes pending events, waiting at most the given
	// time for one to arrive if there are none. Window and monitor
	// events are delivered to the [EventQueue] of the platform.
	WaitEvents(timeout time.Duration)

	// Wake makes a WaitEvents call in progress return.
	// It is safe to call from any goroutine.
	Wake()
}

// FindMonitor returns the monitor with the given identity
// among the given monitors, and whether there is one.
func FindMonitor(mons []Monitor, id MonitorID) (Monitor, bool) {
	for _, m := range mons {
		if m.ID == id {
			return m, true
		}
	}
	return Monitor{}, false
}
