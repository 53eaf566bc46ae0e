// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wallpaper

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/animwall/base/errors"
	"cogentcore.org/animwall/base/ordmap"
)

// ErrNoDisplays is returned when there is no display to render onto.
var ErrNoDisplays = errors.New("wallpaper: no displays")

// MaxRecreate is the number of times in a row that a display which
// fails to draw is recreated on its monitor. After that, the monitor
// stays without a display until it is connected again.
var MaxRecreate = 3

// Target is the presentable swap target of one display.
// It is implemented by [gpu.Surface].
type Target interface {

	// Size returns the current size of the target.
	Size() image.Point

	// SetSize recreates the swap target at the given size,
	// returning whether it changed.
	SetSize(size image.Point) (bool, error)

	// Release frees the target.
	Release()
}

// TargetMaker makes the swap target for a window.
type TargetMaker interface {
	NewTarget(w Window) (Target, error)
}

// Drawer draws the shared content into a target and presents it.
type Drawer interface {
	Draw(t Target) error
}

// Display is the render target of one connected monitor.
type Display struct {

	// Window covering the monitor.
	Window Window

	// Monitor the window was made for.
	Monitor Monitor

	// Target is the swap target of the window.
	Target Target

	// Redraw is set when the display should be drawn on the next render.
	Redraw bool
}

// ID returns the window identity of the display.
func (d *Display) ID() WindowID {
	return d.Window.ID()
}

func (d *Display) String() string {
	return fmt.Sprintf("display %d on monitor %d %s", d.Window.ID(), d.Monitor.ID, d.Monitor.Name)
}

// Displays maintains one [Display] per connected monitor. It owns the
// only mapping from window identity to display: events from the
// platform and the placer name windows by [WindowID], and unknown
// identities are ignored. It is only used from the main loop.
type Displays struct {

	// Platform makes the windows.
	Platform Platform

	// Targets makes the swap targets of the windows.
	Targets TargetMaker

	// Placer places the windows as backgrounds.
	Placer Placer

	// displays in creation order.
	displays *ordmap.Map[WindowID, *Display]

	// failures counts the draw failures in a row per monitor.
	failures map[MonitorID]int
}

// NewDisplays returns a new empty set of displays.
func NewDisplays(pl Platform, tm TargetMaker, placer Placer) *Displays {
	return &Displays{Platform: pl, Targets: tm, Placer: placer, displays: ordmap.New[WindowID, *Display](), failures: map[MonitorID]int{}}
}

// Open creates a display for every connected monitor. A monitor
// that fails is logged and skipped. It returns an error wrapping
// [ErrNoDisplays] only if no display could be created.
func (ds *Displays) Open() error {
	mons := ds.Platform.Monitors()
	var errs []error
	for _, mon := range mons {
		if _, err := ds.CreateFor(mon); err != nil {
			errs = append(errs, err)
			slog.Error("skipping monitor", "monitor", mon.Name, "err", err)
		}
	}
	switch {
	case len(mons) == 0:
		return fmt.Errorf("%w: no monitors connected", ErrNoDisplays)
	case ds.IsEmpty():
		return fmt.Errorf("%w: all %d monitors failed: %w", ErrNoDisplays, len(mons), errors.Join(errs...))
	}
	return nil
}

// CreateFor creates a display covering the given monitor: a window,
// its swap target at the physical size of the monitor, and its
// background placement. Everything made is freed if a step fails.
func (ds *Displays) CreateFor(mon Monitor) (*Display, error) {
	w, err := ds.Platform.NewWindow(mon)
	if err != nil {
		return nil, fmt.Errorf("wallpaper: window for %s: %w", mon.Name, err)
	}
	t, err := ds.Targets.NewTarget(w)
	if err != nil {
		w.Destroy()
		return nil, fmt.Errorf("wallpaper: target for %s: %w", mon.Name, err)
	}
	if err := ds.Placer.Place(w, BackgroundRequest(mon)); err != nil {
		ds.Placer.Forget(w.ID())
		t.Release()
		w.Destroy()
		return nil, fmt.Errorf("wallpaper: placing on %s: %w", mon.Name, err)
	}
	w.Show()
	d := &Display{Window: w, Monitor: mon, Target: t, Redraw: true}
	ds.displays.Add(w.ID(), d)
	slog.Info("display opened", "monitor", mon.String(), "window", w.ID(), "size", t.Size())
	return d, nil
}

// Get returns the display with the given window identity, or nil.
func (ds *Displays) Get(id WindowID) *Display {
	return ds.displays.ValueByKey(id)
}

// Len returns the number of displays.
func (ds *Displays) Len() int {
	return ds.displays.Len()
}

// IsEmpty returns whether there are no displays left.
func (ds *Displays) IsEmpty() bool {
	return ds.displays.Len() == 0
}

// IDs returns the window identities of the displays in creation order.
func (ds *Displays) IDs() []WindowID {
	return ds.displays.Keys()
}

// Resize recreates the swap target of the given display at the given
// size, and requests a redraw of it. Other displays and the shared
// resources are not affected. Unknown windows and empty sizes are
// ignored. A display whose target fails to resize is dropped.
func (ds *Displays) Resize(id WindowID, size image.Point) error {
	d := ds.Get(id)
	if d == nil || size.X <= 0 || size.Y <= 0 {
		return nil
	}
	changed, err := d.Target.SetSize(size)
	if err != nil {
		ds.Close(id)
		return fmt.Errorf("wallpaper: resizing %v: %w", d, err)
	}
	if changed {
		slog.Debug("display resized", "window", id, "size", size)
		d.Redraw = true
	}
	return nil
}

// Close removes and frees the given display, returning whether
// it existed. Closing an unknown window does nothing.
func (ds *Displays) Close(id WindowID) bool {
	d := ds.Get(id)
	if d == nil {
		return false
	}
	ds.displays.DeleteKey(id)
	ds.release(d)
	slog.Info("display closed", "monitor", d.Monitor.String(), "window", id)
	return true
}

// CloseMonitor closes the displays on the monitor with the given identity.
func (ds *Displays) CloseMonitor(id MonitorID) {
	for _, d := range ds.displays.Values() {
		if d.Monitor.ID == id {
			ds.Close(d.ID())
		}
	}
}

// OnMonitor returns the display on the monitor with the given
// identity, or nil.
func (ds *Displays) OnMonitor(id MonitorID) *Display {
	for _, kv := range ds.displays.Order {
		if kv.Value.Monitor.ID == id {
			return kv.Value
		}
	}
	return nil
}

func (ds *Displays) release(d *Display) {
	ds.Placer.Forget(d.Window.ID())
	d.Target.Release()
	d.Window.Destroy()
}

// HandleEvent applies the given event. Per-display failures
// are logged and drop only that display.
func (ds *Displays) HandleEvent(ev Event) {
	slog.Debug("event", "event", ev.String())
	switch ev.Type {
	case ResizeEvent:
		errors.Log(ds.Resize(ev.Window, ev.Size))
	case CloseEvent:
		ds.Close(ev.Window)
	case MonitorConnectEvent:
		delete(ds.failures, ev.Monitor.ID)
		if ds.OnMonitor(ev.Monitor.ID) != nil {
			return
		}
		errors.Log1(ds.CreateFor(ev.Monitor))
	case MonitorDisconnectEvent:
		delete(ds.failures, ev.Monitor.ID)
		ds.CloseMonitor(ev.Monitor.ID)
	}
}

// RequestRedrawAll marks every display to be drawn on the next render.
func (ds *Displays) RequestRedrawAll() {
	for _, kv := range ds.displays.Order {
		kv.Value.Redraw = true
	}
}

// Render draws every display that needs a redraw with the given
// drawer, returning the number drawn. A display that fails to draw is
// dropped after all the others have been drawn, and recreated if
// its monitor is still connected, up to [MaxRecreate] times in a row.
func (ds *Displays) Render(dr Drawer) int {
	var failed []*Display
	n := 0
	for _, kv := range ds.displays.Order {
		d := kv.Value
		if !d.Redraw {
			continue
		}
		d.Redraw = false
		if err := dr.Draw(d.Target); err != nil {
			slog.Error("display failed", "display", d.String(), "err", err)
			failed = append(failed, d)
			continue
		}
		delete(ds.failures, d.Monitor.ID)
		n++
	}
	if len(failed) == 0 {
		return n
	}
	mons := ds.Platform.Monitors()
	for _, d := range failed {
		ds.Close(d.ID())
		mon, ok := FindMonitor(mons, d.Monitor.ID)
		if !ok {
			continue
		}
		ds.failures[mon.ID]++
		if ds.failures[mon.ID] > MaxRecreate {
			slog.Error("giving up on monitor until it is connected again", "monitor", mon.String(), "failures", ds.failures[mon.ID])
			continue
		}
		slog.Info("recreating display", "monitor", mon.String(), "attempt", ds.failures[mon.ID])
		errors.Log1(ds.CreateFor(mon))
	}
	return n
}

// Release frees all of the displays.
func (ds *Displays) Release() {
	for _, id := range ds.IDs() {
		ds.Close(id)
	}
}
