// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wallpaper

import (
	"image"
	"testing"

	"cogentcore.org/animwall/playback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDisplays(t *testing.T, names ...string) (*Displays, *platform, *player, *placer) {
	clock, err := playback.NewDiscrete(10, 5, 25)
	require.NoError(t, err)
	pf, pl, pc := newPlatform(names...), newPlayer(clock), newPlacer()
	return NewDisplays(pf, pl, pc), pf, pl, pc
}

func TestDisplaysOpen(t *testing.T) {
	ds, pf, pl, pc := newTestDisplays(t, "DP-1", "DP-2", "HDMI-1")
	require.NoError(t, ds.Open())
	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, []WindowID{1, 2, 3}, ds.IDs())
	for i, w := range pf.windows {
		assert.True(t, w.shown)
		d := ds.Get(w.id)
		require.NotNil(t, d)
		assert.Equal(t, pf.mons[i], d.Monitor)
		assert.Equal(t, pf.mons[i].Size, d.Target.Size())
		assert.Same(t, pl.targets[i], d.Target)

		req := pc.placed[w.id]
		assert.Equal(t, Background, req.Layer)
		assert.True(t, req.Anchor.Has(AnchorAll))
		assert.Zero(t, req.ExclusiveZone)
		assert.False(t, req.AcceptInput)
		assert.Equal(t, "wallpaper", req.Namespace)
		assert.Equal(t, pf.mons[i].Name, req.Monitor.Name)
	}
}

func TestDisplaysOpenPartial(t *testing.T) {
	ds, pf, pl, pc := newTestDisplays(t, "DP-1", "DP-2", "HDMI-1")
	pc.fail["DP-2"] = true
	require.NoError(t, ds.Open())
	assert.Equal(t, 2, ds.Len())

	// the failed window and target are freed
	w := pf.windows[1]
	assert.Equal(t, "DP-2", w.mon.Name)
	assert.Equal(t, 1, w.destroyed)
	assert.False(t, w.shown)
	assert.True(t, pl.targets[1].released)
	assert.Nil(t, ds.Get(w.id))
}

func TestDisplaysOpenNone(t *testing.T) {
	ds, pf, pl, _ := newTestDisplays(t, "DP-1", "DP-2")
	pf.fail["DP-1"] = true
	pl.failMake["DP-2"] = true
	err := ds.Open()
	assert.ErrorIs(t, err, ErrNoDisplays)
	assert.ErrorIs(t, err, errFake)
	assert.True(t, ds.IsEmpty())
	assert.Equal(t, 1, pf.windows[0].destroyed)

	ds, _, _, _ = newTestDisplays(t)
	assert.ErrorIs(t, ds.Open(), ErrNoDisplays)
}

func TestDisplaysClose(t *testing.T) {
	ds, pf, pl, pc := newTestDisplays(t, "DP-1", "DP-2", "HDMI-1")
	require.NoError(t, ds.Open())
	first, last := ds.Get(1), ds.Get(3)

	assert.True(t, ds.Close(2))
	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, []WindowID{1, 3}, ds.IDs())
	assert.Equal(t, 1, pf.windows[1].destroyed)
	assert.True(t, pl.targets[1].released)
	assert.Equal(t, []WindowID{2}, pc.forgotten)

	// the others are untouched
	assert.Same(t, first, ds.Get(1))
	assert.Same(t, last, ds.Get(3))
	assert.False(t, pl.targets[0].released)
	assert.False(t, pl.targets[2].released)
	assert.Equal(t, pf.mons[2].Size, last.Target.Size())

	// closing again or closing an unknown window does nothing
	assert.False(t, ds.Close(2))
	assert.False(t, ds.Close(42))
	assert.Equal(t, 1, pf.windows[1].destroyed)

	assert.True(t, ds.Close(1))
	assert.False(t, ds.IsEmpty())
	assert.True(t, ds.Close(3))
	assert.True(t, ds.IsEmpty())
}

func TestDisplaysResize(t *testing.T) {
	ds, _, pl, _ := newTestDisplays(t, "DP-1", "DP-2")
	require.NoError(t, ds.Open())
	other := ds.Get(2)
	otherSize := other.Target.Size()
	pl.uniforms.data = make([]byte, playback.UniformsSize)
	ds.Render(pl)

	require.NoError(t, ds.Resize(1, image.Pt(1280, 720)))
	assert.Equal(t, image.Pt(1280, 720), ds.Get(1).Target.Size())
	assert.True(t, ds.Get(1).Redraw)
	assert.Same(t, other, ds.Get(2))
	assert.Equal(t, otherSize, other.Target.Size())
	assert.False(t, other.Redraw)

	// same size does not redraw
	ds.Get(1).Redraw = false
	require.NoError(t, ds.Resize(1, image.Pt(1280, 720)))
	assert.False(t, ds.Get(1).Redraw)

	// unknown windows and empty sizes are ignored
	assert.NoError(t, ds.Resize(42, image.Pt(640, 480)))
	assert.NoError(t, ds.Resize(1, image.Point{}))
	assert.Equal(t, image.Pt(1280, 720), ds.Get(1).Target.Size())

	// a failing target drops only that display
	pl.targets[1].failSize = true
	assert.ErrorIs(t, ds.Resize(2, image.Pt(640, 480)), errFake)
	assert.Nil(t, ds.Get(2))
	assert.Equal(t, 1, ds.Len())
}

func TestDisplaysHandleEvent(t *testing.T) {
	ds, pf, _, _ := newTestDisplays(t, "DP-1", "DP-2")
	require.NoError(t, ds.Open())

	ds.HandleEvent(Event{Type: ResizeEvent, Window: 2, Size: image.Pt(800, 600)})
	assert.Equal(t, image.Pt(800, 600), ds.Get(2).Target.Size())

	hdmi := Monitor{ID: 3, Name: "HDMI-1", Size: image.Pt(1024, 768)}
	pf.mons = append(pf.mons, hdmi)
	ds.HandleEvent(Event{Type: MonitorConnectEvent, Monitor: hdmi})
	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, hdmi, ds.Get(3).Monitor)

	// already has a display
	ds.HandleEvent(Event{Type: MonitorConnectEvent, Monitor: hdmi})
	assert.Equal(t, 3, ds.Len())

	pf.disconnect(1)
	ds.HandleEvent(Event{Type: MonitorDisconnectEvent, Monitor: Monitor{ID: 1, Name: "DP-1"}})
	assert.Equal(t, []WindowID{2, 3}, ds.IDs())

	// the close that follows a disconnect is absorbed
	ds.HandleEvent(Event{Type: CloseEvent, Window: 1})
	ds.HandleEvent(Event{Type: ResizeEvent, Window: 1, Size: image.Pt(10, 10)})
	assert.Equal(t, 2, ds.Len())

	ds.HandleEvent(Event{Type: CloseEvent, Window: 2})
	ds.HandleEvent(Event{Type: CloseEvent, Window: 3})
	assert.True(t, ds.IsEmpty())
}

func TestDisplaysRenderRecreate(t *testing.T) {
	ds, pf, pl, _ := newTestDisplays(t, "DP-1", "DP-2", "HDMI-1")
	require.NoError(t, ds.Open())
	require.NoError(t, pl.SyncUniforms())

	pl.failDraw[2] = true
	assert.Equal(t, 2, ds.Render(pl))
	assert.Len(t, pl.draws[1], 1)
	assert.Len(t, pl.draws[3], 1)

	// dropped and recreated on the same monitor
	assert.Nil(t, ds.Get(2))
	assert.Equal(t, []WindowID{1, 3, 4}, ds.IDs())
	assert.Equal(t, "DP-2", ds.Get(4).Monitor.Name)
	assert.True(t, ds.Get(4).Redraw)
	assert.Equal(t, 1, pf.windows[1].destroyed)

	// nothing to redraw until requested
	assert.Equal(t, 1, ds.Render(pl))
	assert.Equal(t, 0, ds.Render(pl))
	ds.RequestRedrawAll()
	assert.Equal(t, 3, ds.Render(pl))

	// not recreated once its monitor is gone
	pl.failDraw[4] = true
	pf.disconnect(2)
	ds.RequestRedrawAll()
	assert.Equal(t, 2, ds.Render(pl))
	assert.Equal(t, []WindowID{1, 3}, ds.IDs())
}

func TestDisplaysSameNamedMonitors(t *testing.T) {
	ds, pf, pl, _ := newTestDisplays(t, "Generic PnP Monitor", "Generic PnP Monitor")
	require.NoError(t, ds.Open())
	require.NoError(t, pl.SyncUniforms())
	assert.Equal(t, 2, ds.Len())

	// disconnecting one closes only its display
	gone := pf.mons[0]
	pf.disconnect(gone.ID)
	ds.HandleEvent(Event{Type: MonitorDisconnectEvent, Monitor: Monitor{ID: gone.ID, Name: gone.Name}})
	assert.Equal(t, []WindowID{2}, ds.IDs())
	assert.Equal(t, MonitorID(2), ds.Get(2).Monitor.ID)

	// another one of the same model gets its own display
	same := Monitor{ID: 3, Name: "Generic PnP Monitor", Position: image.Pt(3840, 0), Size: image.Pt(1920, 1080)}
	pf.mons = append(pf.mons, same)
	ds.HandleEvent(Event{Type: MonitorConnectEvent, Monitor: same})
	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, same, ds.Get(3).Monitor)

	// a failed display is recreated on its own monitor
	pl.failDraw[3] = true
	ds.RequestRedrawAll()
	assert.Equal(t, 1, ds.Render(pl))
	assert.Equal(t, []WindowID{2, 4}, ds.IDs())
	assert.Equal(t, same, ds.Get(4).Monitor)
	assert.Equal(t, pf.mons[0], ds.Get(2).Monitor)
}

func TestDisplaysRecreateLimit(t *testing.T) {
	ds, _, pl, _ := newTestDisplays(t, "DP-1", "DP-2")
	require.NoError(t, ds.Open())
	require.NoError(t, pl.SyncUniforms())

	pl.failMonitor[2] = true
	for range MaxRecreate {
		ds.RequestRedrawAll()
		assert.Equal(t, 1, ds.Render(pl))
		assert.Equal(t, 2, ds.Len())
	}
	// given up on
	ds.RequestRedrawAll()
	assert.Equal(t, 1, ds.Render(pl))
	assert.Equal(t, []WindowID{1}, ds.IDs())
	assert.Nil(t, ds.OnMonitor(2))

	// until it is connected again
	pl.failMonitor[2] = false
	ds.HandleEvent(Event{Type: MonitorConnectEvent, Monitor: Monitor{ID: 2, Name: "DP-2", Size: image.Pt(1921, 1081)}})
	require.NotNil(t, ds.OnMonitor(2))
	ds.RequestRedrawAll()
	assert.Equal(t, 2, ds.Render(pl))
}

func TestDisplaysRecreateResets(t *testing.T) {
	ds, _, pl, _ := newTestDisplays(t, "DP-1")
	require.NoError(t, ds.Open())
	require.NoError(t, pl.SyncUniforms())

	// failures that are not in a row do not add up
	for range 2 * MaxRecreate {
		pl.failMonitor[1] = true
		ds.RequestRedrawAll()
		ds.Render(pl)
		pl.failMonitor[1] = false
		ds.RequestRedrawAll()
		assert.Equal(t, 1, ds.Render(pl))
	}
	assert.NotNil(t, ds.OnMonitor(1))
}

func TestDisplaysRelease(t *testing.T) {
	ds, pf, pl, pc := newTestDisplays(t, "DP-1", "DP-2")
	require.NoError(t, ds.Open())
	ds.Release()
	assert.True(t, ds.IsEmpty())
	for i, w := range pf.windows {
		assert.Equal(t, 1, w.destroyed)
		assert.True(t, pl.targets[i].released)
	}
	assert.Empty(t, pc.placed)
}
