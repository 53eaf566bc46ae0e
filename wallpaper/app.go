// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wallpaper renders a looping animation as the desktop
// background of every connected monitor. A [Pipeline] holds the GPU
// resources shared by all monitors, [Displays] keeps one render
// target per monitor, and an [App] runs the main loop ticking both.
package wallpaper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/animwall/playback"
)

// Player is the shared content drawn on every display,
// which is implemented by [Pipeline].
type Player interface {
	TargetMaker
	Drawer

	// Advance moves the playback position forward by one tick.
	Advance()

	// SyncUniforms writes the playback position for the next draws.
	SyncUniforms() error
}

// App is the main loop. It waits for platform events or the next
// tick, whichever comes first, applies the events to the displays,
// and on each tick advances the player and draws every display.
// It is single-threaded: everything runs on the goroutine that
// called [App.Run], which must be the main thread for most platforms.
type App struct {

	// Platform is the windowing system.
	Platform Platform

	// Player is the content.
	Player Player

	// Placer places the windows as backgrounds.
	Placer Placer

	// Events receives the platform and placer events.
	Events *EventQueue

	// Schedule of the ticks.
	Schedule *playback.Schedule

	// Now returns the current time. It defaults to [time.Now].
	Now func() time.Time

	// Displays are the displays, once running.
	Displays *Displays

	// Ticks is the number of ticks so far.
	Ticks int
}

// NewApp returns a new app ticking rate times per second.
func NewApp(pf Platform, player Player, placer Placer, events *EventQueue, rate int) *App {
	app := &App{Platform: pf, Player: player, Placer: placer, Events: events, Now: time.Now}
	app.Schedule = playback.NewSchedule(rate, app.Now())
	return app
}

// Run opens a display on every monitor and runs the main loop until
// the last display is closed or the context is done. It returns an
// error if no display could be opened, or if the uniforms could not
// be written, which means the device is lost.
func (app *App) Run(ctx context.Context) error {
	app.Displays = NewDisplays(app.Platform, app.Player, app.Placer)
	defer app.Displays.Release()
	if err := app.Displays.Open(); err != nil {
		return err
	}
	for {
		if ctx.Err() != nil {
			slog.Info("stopping", "reason", context.Cause(ctx))
			return nil
		}
		app.Platform.WaitEvents(app.Schedule.Until(app.Now()))
		app.HandleEvents()
		if app.Displays.IsEmpty() {
			slog.Info("no displays left")
			return nil
		}
		if !app.Schedule.Due(app.Now()) {
			continue
		}
		if err := app.Tick(); err != nil {
			return err
		}
	}
}

// HandleEvents applies all of the queued events to the displays.
func (app *App) HandleEvents() {
	for _, ev := range app.Events.Drain() {
		app.Displays.HandleEvent(ev)
	}
}

// Tick advances the player, writes its uniforms, and then
// draws every display.
func (app *App) Tick() error {
	app.Ticks++
	app.Player.Advance()
	if err := app.Player.SyncUniforms(); err != nil {
		return fmt.Errorf("wallpaper: tick %d: %w", app.Ticks, err)
	}
	app.Displays.RequestRedrawAll()
	app.Displays.Render(app.Player)
	return nil
}
