// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wallpaper

// Layers are the stacking layers a window can be placed in.
type Layers int32

const (
	// Background is below everything, including desktop icons.
	Background Layers = iota

	// Bottom is above the background and below normal windows.
	Bottom

	// Top is above normal windows.
	Top

	// Overlay is above everything.
	Overlay
)

// Anchors are the monitor edges a window is attached to.
type Anchors int32

const (
	AnchorTop Anchors = 1 << iota
	AnchorBottom
	AnchorLeft
	AnchorRight

	// AnchorAll attaches to every edge, so the window covers
	// the whole monitor.
	AnchorAll = AnchorTop | AnchorBottom | AnchorLeft | AnchorRight
)

// Has returns whether all of the given anchors are set.
func (an Anchors) Has(a Anchors) bool {
	return an&a == a
}

// PlaceRequest describes how a window is to be placed on a monitor.
type PlaceRequest struct {

	// Layer to place the window in.
	Layer Layers

	// Anchor edges of the monitor.
	Anchor Anchors

	// ExclusiveZone is the screen space reserved from other windows.
	// Zero reserves nothing.
	ExclusiveZone int

	// Namespace names the kind of surface to the compositor.
	Namespace string

	// Monitor to place the window on.
	Monitor Monitor

	// AcceptInput is whether the window takes pointer and
	// keyboard input.
	AcceptInput bool
}

// BackgroundRequest returns the request placing a window as a
// full-screen background on the given monitor, reserving no
// space and taking no input.
func BackgroundRequest(mon Monitor) PlaceRequest {
	return PlaceRequest{
		Layer:         Background,
		Anchor:        AnchorAll,
		ExclusiveZone: 0,
		Namespace:     "wallpaper",
		Monitor:       mon,
		AcceptInput:   false,
	}
}

// Placer anchors windows as background layers. Configure and closed
// notifications from the compositor are delivered as [ResizeEvent]
// and [CloseEvent] to an [EventQueue].
type Placer interface {

	// Place places the given window, which is not yet shown.
	Place(w Window, req PlaceRequest) error

	// Forget stops tracking the given window, before it is destroyed.
	Forget(id WindowID)
}
