// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wallpaper

//go:generate core generate

import (
	"fmt"
	"image"
	"sync"
)

// Events are the types of [Event].
type Events int32 //enums:enum

const (
	// ResizeEvent is a new size for a window, either from the platform
	// or from a placement configure notification.
	ResizeEvent Events = iota

	// CloseEvent is a window being closed.
	CloseEvent

	// MonitorConnectEvent is a monitor being connected.
	MonitorConnectEvent

	// MonitorDisconnectEvent is a monitor being disconnected.
	MonitorDisconnectEvent
)

// Event is a window or monitor event. Events carry a window identity
// rather than a reference to a display, so that whoever sends them
// never holds on to display state.
type Event struct {

	// Type of event.
	Type Events

	// Window the event is for, for window events.
	Window WindowID

	// Size is the new size, for [ResizeEvent].
	Size image.Point

	// Monitor is the monitor, for monitor events. Only the
	// identity and name are set for [MonitorDisconnectEvent].
	Monitor Monitor
}

func (ev Event) String() string {
	switch ev.Type {
	case ResizeEvent:
		return fmt.Sprintf("%v window %d %v", ev.Type, ev.Window, ev.Size)
	case CloseEvent:
		return fmt.Sprintf("%v window %d", ev.Type, ev.Window)
	}
	return fmt.Sprintf("%v monitor %d %s", ev.Type, ev.Monitor.ID, ev.Monitor.Name)
}

// EventQueue collects events from the platform and the placer,
// which may send them from other goroutines, for the main loop.
type EventQueue struct {
	mu     sync.Mutex
	events []Event
	wake   func()
}

// SetWake sets the function called after each Send, typically
// to make the platform stop waiting for events.
func (eq *EventQueue) SetWake(wake func()) {
	eq.mu.Lock()
	eq.wake = wake
	eq.mu.Unlock()
}

// Send adds an event to the queue.
func (eq *EventQueue) Send(ev Event) {
	eq.mu.Lock()
	eq.events = append(eq.events, ev)
	wake := eq.wake
	eq.mu.Unlock()
	if wake != nil {
		wake()
	}
}

// Drain removes and returns all of the queued events, in order.
func (eq *EventQueue) Drain() []Event {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	evs := eq.events
	eq.events = nil
	return evs
}

// Len returns the number of queued events.
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.events)
}
