// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wallpaper

import (
	"encoding/binary"
	"errors"
	"image"
	"math"
	"slices"
	"time"

	"cogentcore.org/animwall/playback"
	"github.com/cogentcore/webgpu/wgpu"
)

var errFake = errors.New("fake failure")

type window struct {
	id        WindowID
	mon       Monitor
	size      image.Point
	shown     bool
	destroyed int
}

func (w *window) ID() WindowID                               { return w.id }
func (w *window) Monitor() Monitor                           { return w.mon }
func (w *window) Size() image.Point                          { return w.size }
func (w *window) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (w *window) Show()                                      { w.shown = true }
func (w *window) Destroy()                                   { w.destroyed++ }

type platform struct {
	mons    []Monitor
	windows []*window
	nextID  WindowID
	fail    map[string]bool

	// onWait is called on each WaitEvents with the timeout.
	onWait func(timeout time.Duration)
	waits  int
}

func newPlatform(names ...string) *platform {
	pf := &platform{fail: map[string]bool{}}
	for i, nm := range names {
		pf.mons = append(pf.mons, Monitor{ID: MonitorID(i + 1), Name: nm, Position: image.Pt(1920*i, 0), Size: image.Pt(1920+i, 1080+i)})
	}
	return pf
}

func (pf *platform) Monitors() []Monitor { return slices.Clone(pf.mons) }

func (pf *platform) NewWindow(mon Monitor) (Window, error) {
	if pf.fail[mon.Name] {
		return nil, errFake
	}
	pf.nextID++
	w := &window{id: pf.nextID, mon: mon, size: mon.Size}
	pf.windows = append(pf.windows, w)
	return w, nil
}

func (pf *platform) WaitEvents(timeout time.Duration) {
	pf.waits++
	if pf.onWait != nil {
		pf.onWait(timeout)
	}
}

func (pf *platform) Wake() {}

func (pf *platform) disconnect(id MonitorID) {
	pf.mons = slices.DeleteFunc(pf.mons, func(m Monitor) bool { return m.ID == id })
}

type target struct {
	window   WindowID
	monitor  MonitorID
	size     image.Point
	released bool
	failSize bool
}

func (t *target) Size() image.Point { return t.size }

func (t *target) SetSize(size image.Point) (bool, error) {
	if t.failSize {
		return false, errFake
	}
	if size == t.size {
		return false, nil
	}
	t.size = size
	return true, nil
}

func (t *target) Release() { t.released = true }

type placer struct {
	placed    map[WindowID]PlaceRequest
	forgotten []WindowID
	fail      map[string]bool
}

func newPlacer() *placer {
	return &placer{placed: map[WindowID]PlaceRequest{}, fail: map[string]bool{}}
}

func (pc *placer) Place(w Window, req PlaceRequest) error {
	if pc.fail[req.Monitor.Name] {
		return errFake
	}
	pc.placed[w.ID()] = req
	return nil
}

func (pc *placer) Forget(id WindowID) {
	delete(pc.placed, id)
	pc.forgotten = append(pc.forgotten, id)
}

// uniforms records what is written to it, like the uniform buffer.
type uniforms struct {
	data   []byte
	writes int
	fail   bool
}

func (u *uniforms) Write(data []byte) error {
	if u.fail {
		return errFake
	}
	u.data = slices.Clone(data)
	u.writes++
	return nil
}

// position decodes the position from the last write.
func (u *uniforms) position() float32 {
	return math.Float32frombits(binary.NativeEndian.Uint32(u.data[4:8]))
}

// player draws by recording the position in the uniform
// buffer at the time of each draw.
type player struct {
	clock    *playback.Clock
	uniforms uniforms
	targets  []*target
	failMake map[string]bool
	failDraw map[WindowID]bool

	// failMonitor fails every draw on a monitor.
	failMonitor map[MonitorID]bool

	// draws has the uniform position seen by each draw, per window.
	draws map[WindowID][]float32

	// calls records the order of the calls.
	calls []string
}

func newPlayer(clock *playback.Clock) *player {
	return &player{clock: clock, failMake: map[string]bool{}, failDraw: map[WindowID]bool{}, failMonitor: map[MonitorID]bool{}, draws: map[WindowID][]float32{}}
}

func (pl *player) NewTarget(w Window) (Target, error) {
	if pl.failMake[w.Monitor().Name] {
		return nil, errFake
	}
	t := &target{window: w.ID(), monitor: w.Monitor().ID, size: w.Size()}
	pl.targets = append(pl.targets, t)
	return t, nil
}

func (pl *player) Draw(t Target) error {
	ft := t.(*target)
	pl.calls = append(pl.calls, "draw")
	if ft.released || pl.failDraw[ft.window] || pl.failMonitor[ft.monitor] {
		return errFake
	}
	pl.draws[ft.window] = append(pl.draws[ft.window], pl.uniforms.position())
	return nil
}

func (pl *player) Advance() {
	pl.calls = append(pl.calls, "advance")
	pl.clock.Advance()
}

func (pl *player) SyncUniforms() error {
	pl.calls = append(pl.calls, "sync")
	return pl.clock.Sync(&pl.uniforms)
}
