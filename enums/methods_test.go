// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// it is much easier to test with an independent enum mock
type enum int64

var enumMap = map[enum]string{5: "apple", 7: "orange"}
var enumValueMap = map[string]enum{"apple": 5, "orange": 7}

func (e enum) String() string    { return String(e, enumMap) }
func (e enum) Int64() int64      { return int64(e) }
func (e enum) Desc() string      { return Desc(e, map[enum]string{5: "A red fruit"}) }
func (e enum) Values() []Enum    { return Values([]enum{5, 7}) }
func (e *enum) SetInt64(i int64) { *e = enum(i) }
func (e *enum) SetString(s string) error {
	return SetStringLower(e, s, enumValueMap, "Fruits")
}

func TestString(t *testing.T) {
	assert.Equal(t, "apple", String(5, enumMap))
	assert.Equal(t, "3", String(3, enumMap))
	assert.Equal(t, "3", enum(3).String())
}

func TestSetString(t *testing.T) {
	i := enum(0)
	assert.NoError(t, SetString(&i, "apple", enumValueMap, "Fruits"))
	assert.Equal(t, enum(5), i)
	i = enum(4)
	err := SetString(&i, "Apple", enumValueMap, "Fruits")
	if assert.Error(t, err) {
		assert.Equal(t, "Apple is not a valid value for type Fruits", err.Error())
	}
	assert.Equal(t, enum(4), i)

	assert.NoError(t, SetStringLower(&i, "Apple", enumValueMap, "Fruits"))
	assert.Equal(t, enum(5), i)
	i = enum(4)
	err = SetStringLower(&i, "Pear", enumValueMap, "Fruits")
	if assert.Error(t, err) {
		assert.Equal(t, "Pear is not a valid value for type Fruits", err.Error())
	}
	assert.Equal(t, enum(4), i)
}

func TestDesc(t *testing.T) {
	assert.Equal(t, "A red fruit", enum(5).Desc())
	assert.Equal(t, "orange", enum(7).Desc())
}

func TestValues(t *testing.T) {
	assert.Equal(t, []Enum{enum(7), enum(4)}, Values([]enum{7, 4}))
	assert.Equal(t, []string{"apple", "orange"}, Strings(enum(0).Values()))
}

func TestUnmarshalText(t *testing.T) {
	i := enum(0)
	assert.NoError(t, UnmarshalText(&i, []byte("ORANGE"), "Fruits"))
	assert.Equal(t, enum(7), i)
	i = 4
	err := UnmarshalText(&i, []byte("Pear"), "Fruits")
	if assert.Error(t, err) {
		assert.Equal(t, "Fruits.UnmarshalText: Pear is not a valid value for type Fruits (must be one of apple, orange)", err.Error())
	}
	assert.Equal(t, enum(4), i)
}

var _ EnumSetter = new(enum)
