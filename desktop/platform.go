// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

// Package desktop implements the wallpaper platform with glfw.
// Everything in it must be called on the main thread, after [gpu.Init].
package desktop

import (
	"image"
	"log/slog"
	"time"

	"cogentcore.org/animwall/wallpaper"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// MonitorDebug turns on debugging statements about monitor changes
// and updates from glfw.
var MonitorDebug = false

// Platform is the glfw [wallpaper.Platform].
type Platform struct {

	// Events receives the window and monitor events.
	Events *wallpaper.EventQueue

	windows map[*glfw.Window]*Window

	lastID wallpaper.WindowID

	monitors monitorIDs[*glfw.Monitor]
}

// monitorIDs gives each monitor handle an identity that stays the
// same until the monitor is forgotten.
type monitorIDs[K comparable] struct {
	ids  map[K]wallpaper.MonitorID
	last wallpaper.MonitorID
}

// get returns the identity of the given monitor,
// assigning a new one on first use.
func (mi *monitorIDs[K]) get(k K) wallpaper.MonitorID {
	if mi.ids == nil {
		mi.ids = map[K]wallpaper.MonitorID{}
	}
	id, ok := mi.ids[k]
	if !ok {
		mi.last++
		id = mi.last
		mi.ids[k] = id
	}
	return id
}

// forget removes the given monitor, returning its
// identity and whether it had one.
func (mi *monitorIDs[K]) forget(k K) (wallpaper.MonitorID, bool) {
	id, ok := mi.ids[k]
	delete(mi.ids, k)
	return id, ok
}

// NewPlatform returns a new platform sending its events to the given
// queue, which is woken with [Platform.Wake].
func NewPlatform(events *wallpaper.EventQueue) *Platform {
	pf := &Platform{Events: events, windows: map[*glfw.Window]*Window{}}
	events.SetWake(pf.Wake)
	glfw.SetMonitorCallback(pf.MonitorChange)
	return pf
}

// Monitors returns the connected monitors that have a video mode.
func (pf *Platform) Monitors() []wallpaper.Monitor {
	gms := glfw.GetMonitors()
	mons := make([]wallpaper.Monitor, 0, len(gms))
	for i, gm := range gms {
		mon, ok := pf.monitorOf(gm)
		if !ok {
			if MonitorDebug {
				slog.Debug("MonitorDebug: monitor has no size", "number", i, "name", gm.GetName())
			}
			continue
		}
		if MonitorDebug {
			slog.Debug("MonitorDebug: monitor", "number", i, "monitor", mon.String())
		}
		mons = append(mons, mon)
	}
	return mons
}

func (pf *Platform) monitorOf(gm *glfw.Monitor) (wallpaper.Monitor, bool) {
	id := pf.monitors.get(gm)
	vm := gm.GetVideoMode()
	if vm == nil {
		return wallpaper.Monitor{ID: id, Name: gm.GetName()}, false
	}
	x, y := gm.GetPos()
	return newMonitor(id, gm.GetName(), image.Pt(x, y), image.Pt(vm.Width, vm.Height))
}

// newMonitor returns the monitor with the given geometry,
// and false if it has no size.
func newMonitor(id wallpaper.MonitorID, name string, pos, size image.Point) (wallpaper.Monitor, bool) {
	mon := wallpaper.Monitor{ID: id, Name: name, Position: pos, Size: size}
	return mon, size.X > 0 && size.Y > 0
}

// MonitorChange is called when a monitor is connected to or
// disconnected from the system.
func (pf *Platform) MonitorChange(gm *glfw.Monitor, event glfw.PeripheralEvent) {
	if MonitorDebug {
		slog.Debug("MonitorDebug: monitorChange", "monitor", gm.GetName(), "connected", event == glfw.Connected)
	}
	switch event {
	case glfw.Connected:
		mon, ok := pf.monitorOf(gm)
		if !ok {
			slog.Warn("ignoring connected monitor with no size", "monitor", mon.Name)
			return
		}
		pf.Events.Send(wallpaper.Event{Type: wallpaper.MonitorConnectEvent, Monitor: mon})
	case glfw.Disconnected:
		id, ok := pf.monitors.forget(gm)
		if !ok {
			return
		}
		pf.Events.Send(wallpaper.Event{Type: wallpaper.MonitorDisconnectEvent, Monitor: wallpaper.Monitor{ID: id, Name: gm.GetName()}})
	}
}

// NewWindow returns a new hidden window covering the given monitor.
// It is undecorated, and neither takes focus nor iconifies.
func (pf *Platform) NewWindow(mon wallpaper.Monitor) (wallpaper.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Visible, glfw.False) // needed to position
	glfw.WindowHint(glfw.Decorated, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Focused, glfw.False)
	glfw.WindowHint(glfw.FocusOnShow, glfw.False)
	glfw.WindowHint(glfw.AutoIconify, glfw.False)
	glw, err := glfw.CreateWindow(mon.Size.X, mon.Size.Y, "animwall "+mon.Name, nil, nil)
	if err != nil {
		return nil, err
	}
	glw.SetPos(mon.Position.X, mon.Position.Y)
	pf.lastID++
	w := &Window{platform: pf, glw: glw, id: pf.lastID, mon: mon}
	pf.windows[glw] = w
	glw.SetFramebufferSizeCallback(w.fbResized)
	glw.SetCloseCallback(w.closeRequested)
	return w, nil
}

// WaitEvents processes events, waiting at most timeout for one.
func (pf *Platform) WaitEvents(timeout time.Duration) {
	if timeout <= 0 {
		glfw.PollEvents()
		return
	}
	glfw.WaitEventsTimeout(timeout.Seconds())
}

// Wake sends an empty event, which has the effect of making
// a [Platform.WaitEvents] in progress return.
func (pf *Platform) Wake() {
	glfw.PostEmptyEvent()
}
