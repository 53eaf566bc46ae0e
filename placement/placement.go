// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package placement provides the [wallpaper.Placer] implementations
// that anchor wallpaper windows as backgrounds.
package placement

//go:generate core generate

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"cogentcore.org/animwall/base/errors"
	"cogentcore.org/animwall/wallpaper"
)

// ErrUnavailable is returned when no placement protocol can be used
// in the current session.
var ErrUnavailable = errors.New("placement: unavailable")

// Kinds are the kinds of placer.
type Kinds int32 //enums:enum -transform lower -accept-lower

const (
	// Auto chooses a placer from the session.
	Auto Kinds = iota

	// X11 uses EWMH hints on an X server.
	X11

	// None does no placement: windows are plain undecorated
	// windows covering their monitor. It must be chosen explicitly.
	None
)

// Session describes the graphical session, from the environment.
type Session struct {
	GOOS           string
	Display        string
	WaylandDisplay string
}

// CurrentSession returns the session of this process.
func CurrentSession() Session {
	return Session{GOOS: runtime.GOOS, Display: os.Getenv("DISPLAY"), WaylandDisplay: os.Getenv("WAYLAND_DISPLAY")}
}

// Resolve returns the concrete kind for the given kind in the session.
// Auto is X11 in an X session. Everywhere else there is no background
// layer for these windows, so Auto is [ErrUnavailable], and None has
// to be asked for.
func (s Session) Resolve(k Kinds) (Kinds, error) {
	switch k {
	case None:
		return None, nil
	case X11:
		if s.Display == "" {
			return X11, fmt.Errorf("%w: x11 requested but DISPLAY is not set", ErrUnavailable)
		}
		return X11, nil
	}
	switch s.GOOS {
	case "darwin", "windows":
		return Auto, fmt.Errorf("%w: no background layer on %s; use placement none", ErrUnavailable, s.GOOS)
	}
	if s.WaylandDisplay != "" {
		return Auto, fmt.Errorf("%w: Wayland session %q has no background layer for these windows; use placement none", ErrUnavailable, s.WaylandDisplay)
	}
	if s.Display == "" {
		return Auto, fmt.Errorf("%w: no graphical session", ErrUnavailable)
	}
	return X11, nil
}

// Placer is a [wallpaper.Placer] that can be closed.
type Placer interface {
	wallpaper.Placer

	// Close frees the placer.
	Close() error
}

// New returns a new placer of the given kind for the current session,
// delivering compositor notifications to the given queue.
func New(k Kinds, events *wallpaper.EventQueue) (Placer, error) {
	rk, err := CurrentSession().Resolve(k)
	if err != nil {
		return nil, err
	}
	slog.Info("placement", "kind", rk)
	if rk == X11 {
		return NewX11(events)
	}
	return NoPlacer{}, nil
}

// NoPlacer does no placement.
type NoPlacer struct{}

func (NoPlacer) Place(w wallpaper.Window, req wallpaper.PlaceRequest) error { return nil }
func (NoPlacer) Forget(id wallpaper.WindowID)                               {}
func (NoPlacer) Close() error                                               { return nil }
