// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placement

import (
	"fmt"
	"image"
	"log/slog"
	"sync"

	"cogentcore.org/animwall/wallpaper"
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/shape"
	"github.com/BurntSushi/xgb/xproto"
)

// X11Window is implemented by windows that have an X11 window id.
type X11Window interface {
	X11Window() uint32
}

// AllDesktops is the _NET_WM_DESKTOP value for being on every desktop.
const AllDesktops = 0xFFFFFFFF

// X11Placer places windows with EWMH hints on an X server. It runs a
// goroutine reading the structure events of the placed windows, which
// are sent to the event queue as resize and close events.
type X11Placer struct {
	events *wallpaper.EventQueue

	conn *xgb.Conn

	// hasShape is whether the shape extension is available
	// for removing the input region.
	hasShape bool

	atoms map[string]xproto.Atom

	mu sync.Mutex

	windows map[xproto.Window]wallpaper.WindowID
}

// NewX11 returns a new placer connected to the X server.
func NewX11(events *wallpaper.EventQueue) (*X11Placer, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("%w: connecting to X server: %w", ErrUnavailable, err)
	}
	pc := &X11Placer{events: events, conn: conn, atoms: map[string]xproto.Atom{}, windows: map[xproto.Window]wallpaper.WindowID{}}
	for _, nm := range atomNames {
		if err := pc.intern(nm); err != nil {
			conn.Close()
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
	}
	if err := shape.Init(conn); err != nil {
		slog.Warn("X shape extension unavailable; wallpaper windows will take input", "err", err)
	} else {
		pc.hasShape = true
	}
	go pc.listen()
	return pc, nil
}

var atomNames = []string{
	"_NET_WM_WINDOW_TYPE",
	"_NET_WM_WINDOW_TYPE_DESKTOP",
	"_NET_WM_WINDOW_TYPE_DOCK",
	"_NET_WM_STATE",
	"_NET_WM_STATE_BELOW",
	"_NET_WM_STATE_ABOVE",
	"_NET_WM_STATE_STICKY",
	"_NET_WM_STATE_SKIP_TASKBAR",
	"_NET_WM_STATE_SKIP_PAGER",
	"_NET_WM_DESKTOP",
}

func (pc *X11Placer) intern(name string) error {
	reply, err := xproto.InternAtom(pc.conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return fmt.Errorf("interning %s: %w", name, err)
	}
	pc.atoms[name] = reply.Atom
	return nil
}

// WindowType returns the EWMH window type for the given request.
func WindowType(req wallpaper.PlaceRequest) string {
	if req.Layer == wallpaper.Background {
		return "_NET_WM_WINDOW_TYPE_DESKTOP"
	}
	return "_NET_WM_WINDOW_TYPE_DOCK"
}

// States returns the EWMH window states for the given request.
func States(req wallpaper.PlaceRequest) []string {
	st := []string{"_NET_WM_STATE_STICKY", "_NET_WM_STATE_SKIP_TASKBAR", "_NET_WM_STATE_SKIP_PAGER"}
	switch req.Layer {
	case wallpaper.Background, wallpaper.Bottom:
		st = append(st, "_NET_WM_STATE_BELOW")
	default:
		st = append(st, "_NET_WM_STATE_ABOVE")
	}
	return st
}

// Geometry returns the ConfigureWindow values for the given request:
// x, y, width, height, and the stack mode. The window covers the whole
// monitor, which is what all four anchors ask for.
func Geometry(req wallpaper.PlaceRequest) []uint32 {
	r := req.Monitor.Bounds()
	mode := uint32(xproto.StackModeAbove)
	if req.Layer == wallpaper.Background || req.Layer == wallpaper.Bottom {
		mode = xproto.StackModeBelow
	}
	return []uint32{uint32(int32(r.Min.X)), uint32(int32(r.Min.Y)), uint32(r.Dx()), uint32(r.Dy()), mode}
}

func (pc *X11Placer) atomList(names []string) []byte {
	b := make([]byte, 4*len(names))
	for i, nm := range names {
		xgb.Put32(b[4*i:], uint32(pc.atoms[nm]))
	}
	return b
}

func (pc *X11Placer) setAtoms(win xproto.Window, prop string, names []string) error {
	err := xproto.ChangePropertyChecked(pc.conn, xproto.PropModeReplace, win, pc.atoms[prop], xproto.AtomAtom, 32, uint32(len(names)), pc.atomList(names)).Check()
	if err != nil {
		return fmt.Errorf("setting %s: %w", prop, err)
	}
	return nil
}

// Place places the given window, which must not be shown yet
// and must be an [X11Window].
func (pc *X11Placer) Place(w wallpaper.Window, req wallpaper.PlaceRequest) error {
	xw, ok := w.(X11Window)
	if !ok || xw.X11Window() == 0 {
		return fmt.Errorf("%w: window %d is not an X11 window", ErrUnavailable, w.ID())
	}
	win := xproto.Window(xw.X11Window())
	if err := pc.setAtoms(win, "_NET_WM_WINDOW_TYPE", []string{WindowType(req)}); err != nil {
		return err
	}
	if err := pc.setAtoms(win, "_NET_WM_STATE", States(req)); err != nil {
		return err
	}
	desk := make([]byte, 4)
	xgb.Put32(desk, AllDesktops)
	if err := xproto.ChangePropertyChecked(pc.conn, xproto.PropModeReplace, win, pc.atoms["_NET_WM_DESKTOP"], xproto.AtomCardinal, 32, 1, desk).Check(); err != nil {
		return fmt.Errorf("setting _NET_WM_DESKTOP: %w", err)
	}
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY | xproto.ConfigWindowWidth | xproto.ConfigWindowHeight | xproto.ConfigWindowStackMode)
	if err := xproto.ConfigureWindowChecked(pc.conn, win, mask, Geometry(req)).Check(); err != nil {
		return fmt.Errorf("configuring window: %w", err)
	}
	if !req.AcceptInput && pc.hasShape {
		// an empty input region lets all input through to what is below
		if err := shape.RectanglesChecked(pc.conn, shape.SoSet, shape.SkInput, xproto.ClipOrderingUnsorted, win, 0, 0, nil).Check(); err != nil {
			return fmt.Errorf("removing input region: %w", err)
		}
	}
	if err := xproto.ChangeWindowAttributesChecked(pc.conn, win, xproto.CwEventMask, []uint32{xproto.EventMaskStructureNotify}).Check(); err != nil {
		return fmt.Errorf("selecting window events: %w", err)
	}
	pc.mu.Lock()
	pc.windows[win] = w.ID()
	pc.mu.Unlock()
	slog.Debug("placed X11 window", "window", w.ID(), "x11", uint32(win), "monitor", req.Monitor.String(), "type", WindowType(req))
	return nil
}

// Forget stops sending events for the given window.
func (pc *X11Placer) Forget(id wallpaper.WindowID) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	for win, wid := range pc.windows {
		if wid == id {
			delete(pc.windows, win)
		}
	}
}

func (pc *X11Placer) lookup(win xproto.Window) (wallpaper.WindowID, bool) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	id, ok := pc.windows[win]
	return id, ok
}

// listen sends the structure events of the placed windows
// until the connection is closed.
func (pc *X11Placer) listen() {
	for {
		ev, err := pc.conn.WaitForEvent()
		if ev == nil && err == nil {
			return
		}
		if err != nil {
			slog.Debug("X11 error", "err", err)
			continue
		}
		switch e := ev.(type) {
		case xproto.ConfigureNotifyEvent:
			if id, ok := pc.lookup(e.Window); ok {
				pc.events.Send(wallpaper.Event{Type: wallpaper.ResizeEvent, Window: id, Size: image.Pt(int(e.Width), int(e.Height))})
			}
		case xproto.DestroyNotifyEvent:
			if id, ok := pc.lookup(e.Window); ok {
				pc.events.Send(wallpaper.Event{Type: wallpaper.CloseEvent, Window: id})
			}
		}
	}
}

// Close closes the connection, which ends the event goroutine.
func (pc *X11Placer) Close() error {
	pc.conn.Close()
	return nil
}
