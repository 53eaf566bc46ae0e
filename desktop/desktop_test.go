// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

package desktop

import (
	"image"
	"testing"
	"time"

	"cogentcore.org/animwall/gpu"
	"cogentcore.org/animwall/wallpaper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMonitor(t *testing.T) {
	mon, ok := newMonitor(2, "DP-1", image.Pt(1920, 0), image.Pt(2560, 1440))
	assert.True(t, ok)
	assert.Equal(t, wallpaper.MonitorID(2), mon.ID)
	assert.Equal(t, image.Rect(1920, 0, 4480, 1440), mon.Bounds())
	assert.Equal(t, "DP-1 2560x1440+1920+0", mon.String())

	_, ok = newMonitor(3, "HDMI-1", image.Point{}, image.Pt(0, 1080))
	assert.False(t, ok)
}

func TestMonitorIDs(t *testing.T) {
	// two handles for monitors of the same model
	a, b := new(int), new(int)
	var mi monitorIDs[*int]
	ida, idb := mi.get(a), mi.get(b)
	assert.NotEqual(t, ida, idb)
	assert.Equal(t, ida, mi.get(a))

	id, ok := mi.forget(a)
	assert.True(t, ok)
	assert.Equal(t, ida, id)
	_, ok = mi.forget(a)
	assert.False(t, ok)
	assert.Equal(t, idb, mi.get(b))

	// reconnected monitors get a new identity
	assert.NotEqual(t, ida, mi.get(a))
}

func TestPlatform(t *testing.T) {
	t.Skip("Need a display on CI")
	require.NoError(t, gpu.Init())
	defer gpu.Terminate()
	events := &wallpaper.EventQueue{}
	pf := NewPlatform(events)
	mons := pf.Monitors()
	require.NotEmpty(t, mons)
	w, err := pf.NewWindow(mons[0])
	require.NoError(t, err)
	assert.Equal(t, wallpaper.WindowID(1), w.ID())
	assert.NotNil(t, w.SurfaceDescriptor())
	w.Show()
	pf.WaitEvents(10 * time.Millisecond)
	assert.Equal(t, mons[0].Size, w.Size())
	w.Destroy()
	w.Destroy()
	assert.Equal(t, image.Point{}, w.Size())
}
