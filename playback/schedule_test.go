// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package playback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedule(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	sc := NewSchedule(25, start)
	assert.Equal(t, 40*time.Millisecond, sc.Period)

	assert.True(t, sc.Due(start))
	assert.False(t, sc.Due(start))
	assert.Equal(t, start.Add(40*time.Millisecond), sc.Next())
	assert.Equal(t, 30*time.Millisecond, sc.Until(start.Add(10*time.Millisecond)))

	// late by several periods: one tick, the rest are lost
	late := start.Add(170 * time.Millisecond)
	assert.Equal(t, time.Duration(0), sc.Until(late))
	assert.True(t, sc.Due(late))
	assert.False(t, sc.Due(late))
	assert.Equal(t, start.Add(200*time.Millisecond), sc.Next())

	// exactly on a boundary
	assert.True(t, sc.Due(start.Add(200*time.Millisecond)))
	assert.Equal(t, start.Add(240*time.Millisecond), sc.Next())
}
