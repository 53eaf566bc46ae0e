// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	om := New[string, int]()
	om.Add("a", 1)
	om.Add("b", 2)
	om.Add("c", 3)
	om.Add("b", 20)
	assert.Equal(t, 3, om.Len())
	assert.Equal(t, []string{"a", "b", "c"}, om.Keys())
	assert.Equal(t, []int{1, 20, 3}, om.Values())
	assert.Equal(t, 20, om.ValueByKey("b"))
	assert.Equal(t, 0, om.ValueByKey("z"))

	assert.True(t, om.DeleteKey("a"))
	assert.False(t, om.DeleteKey("a"))
	assert.Equal(t, []string{"b", "c"}, om.Keys())
	v, ok := om.ValueByKeyTry("c")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = om.ValueByKeyTry("a")
	assert.False(t, ok)
	assert.Equal(t, "[{b 20} {c 3}]", om.String())

	var zm Map[int, string]
	assert.Equal(t, 0, zm.Len())
	zm.Add(1, "x")
	assert.Equal(t, "x", zm.ValueByKey(1))
}
