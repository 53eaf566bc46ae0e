// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package playback

import "time"

// Schedule produces ticks at a fixed period. A late tick is caught
// up to the next period boundary; the ticks missed in between are lost.
type Schedule struct {

	// Period between ticks.
	Period time.Duration

	// next is the time of the next tick.
	next time.Time
}

// NewSchedule returns a schedule ticking rate times per second,
// with the first tick due at start.
func NewSchedule(rate int, start time.Time) *Schedule {
	if rate <= 0 {
		rate = 1
	}
	return &Schedule{Period: time.Second / time.Duration(rate), next: start}
}

// Next returns the time of the next tick.
func (sc *Schedule) Next() time.Time {
	return sc.next
}

// Until returns how long to wait from now until the next tick,
// which is zero if it is already due.
func (sc *Schedule) Until(now time.Time) time.Duration {
	d := sc.next.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// Due reports whether a tick is due at the given time. When it is,
// the next tick is moved to the first period boundary after now.
func (sc *Schedule) Due(now time.Time) bool {
	if now.Before(sc.next) {
		return false
	}
	missed := now.Sub(sc.next) / sc.Period
	sc.next = sc.next.Add((missed + 1) * sc.Period)
	return true
}
