// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placement

import (
	"image"
	"testing"

	"cogentcore.org/animwall/wallpaper"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	var k Kinds
	require.NoError(t, k.UnmarshalText([]byte("X11")))
	assert.Equal(t, X11, k)
	b, err := None.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "none", string(b))
	assert.Error(t, k.SetString("wayland"))
	assert.Equal(t, "7", Kinds(7).String())
	assert.Equal(t, []Kinds{Auto, X11, None}, KindsValues())
}

func TestResolve(t *testing.T) {
	tests := []struct {
		session Session
		kind    Kinds
		want    Kinds
		err     bool
	}{
		{Session{GOOS: "linux", Display: ":0"}, Auto, X11, false},
		{Session{GOOS: "linux", Display: ":0", WaylandDisplay: "wayland-0"}, Auto, Auto, true},
		{Session{GOOS: "linux", Display: ":0", WaylandDisplay: "wayland-0"}, X11, X11, false},
		{Session{GOOS: "linux"}, Auto, Auto, true},
		{Session{GOOS: "linux"}, X11, X11, true},
		{Session{GOOS: "linux", WaylandDisplay: "wayland-0"}, None, None, false},
		{Session{GOOS: "darwin"}, Auto, Auto, true},
		{Session{GOOS: "windows", Display: ":0"}, Auto, Auto, true},
		{Session{GOOS: "darwin"}, None, None, false},
		{Session{GOOS: "windows"}, None, None, false},
	}
	for _, test := range tests {
		got, err := test.session.Resolve(test.kind)
		assert.Equal(t, test.want, got, "%+v %v", test.session, test.kind)
		if test.err {
			assert.ErrorIs(t, err, ErrUnavailable, "%+v %v", test.session, test.kind)
		} else {
			assert.NoError(t, err, "%+v %v", test.session, test.kind)
		}
	}
}

func TestGeometry(t *testing.T) {
	mon := wallpaper.Monitor{Name: "DP-2", Position: image.Pt(-1280, 200), Size: image.Pt(1280, 1024)}
	req := wallpaper.BackgroundRequest(mon)
	x := int32(-1280)
	assert.Equal(t, []uint32{uint32(x), 200, 1280, 1024, xproto.StackModeBelow}, Geometry(req))

	req.Layer = wallpaper.Overlay
	assert.Equal(t, uint32(xproto.StackModeAbove), Geometry(req)[4])
}

func TestStates(t *testing.T) {
	req := wallpaper.BackgroundRequest(wallpaper.Monitor{Name: "DP-1"})
	assert.Equal(t, "_NET_WM_WINDOW_TYPE_DESKTOP", WindowType(req))
	st := States(req)
	assert.Contains(t, st, "_NET_WM_STATE_BELOW")
	assert.Contains(t, st, "_NET_WM_STATE_STICKY")
	assert.Contains(t, st, "_NET_WM_STATE_SKIP_TASKBAR")
	assert.Contains(t, st, "_NET_WM_STATE_SKIP_PAGER")
	assert.NotContains(t, st, "_NET_WM_STATE_ABOVE")
	for _, nm := range append(st, WindowType(req)) {
		assert.Contains(t, atomNames, nm)
	}

	req.Layer = wallpaper.Top
	assert.Equal(t, "_NET_WM_WINDOW_TYPE_DOCK", WindowType(req))
	assert.Contains(t, States(req), "_NET_WM_STATE_ABOVE")
}

func TestAtomList(t *testing.T) {
	pc := &X11Placer{atoms: map[string]xproto.Atom{"A": 1, "B": 0x01020304}}
	b := pc.atomList([]string{"A", "B"})
	require.Len(t, b, 8)
	// xgb encodes little endian
	assert.Equal(t, []byte{1, 0, 0, 0, 4, 3, 2, 1}, b)
}

func TestNoPlacer(t *testing.T) {
	var pc Placer = NoPlacer{}
	assert.NoError(t, pc.Place(nil, wallpaper.PlaceRequest{}))
	pc.Forget(1)
	assert.NoError(t, pc.Close())
}

func TestX11(t *testing.T) {
	t.Skip("Need an X server on CI")
	pc, err := NewX11(&wallpaper.EventQueue{})
	require.NoError(t, err)
	defer pc.Close()
	for _, nm := range atomNames {
		assert.NotZero(t, pc.atoms[nm], nm)
	}
}
