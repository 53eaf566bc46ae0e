// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"fmt"
	"strconv"
	"strings"
)

// integer is the underlying type of enums.
type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// String returns the string representation of the given
// enum value with the given map, or its number
// if it is not in the map.
func String[T integer](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the given enum value from its string representation,
// the map from enum names to values, and the name of the enum type,
// which is used for the error message. The value is unchanged if
// the string is invalid.
func SetString[T any](i *T, s string, valueMap map[string]T, typeName string) error {
	if v, ok := valueMap[s]; ok {
		*i = v
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// SetStringLower is like [SetString], but also accepts the
// lowercase version of the string.
func SetStringLower[T any](i *T, s string, valueMap map[string]T, typeName string) error {
	if v, ok := valueMap[s]; ok {
		*i = v
		return nil
	}
	if v, ok := valueMap[strings.ToLower(s)]; ok {
		*i = v
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// Desc returns the description of the given enum value with
// the given map, or its string representation if it has none.
func Desc[T interface {
	comparable
	Enum
}](i T, descMap map[T]string) string {
	if str, ok := descMap[i]; ok {
		return str
	}
	return i.String()
}

// Values returns the given enum values as a slice of [Enum].
func Values[T Enum](in []T) []Enum {
	res := make([]Enum, len(in))
	for i, v := range in {
		res[i] = v
	}
	return res
}

// Strings returns the string representations of the given values.
func Strings(values []Enum) []string {
	res := make([]string, len(values))
	for i, v := range values {
		res[i] = v.String()
	}
	return res
}

// UnmarshalText sets the given enum value from the given text,
// for implementing [encoding.TextUnmarshaler]. The error
// lists the valid values.
func UnmarshalText[T EnumSetter](i T, text []byte, typeName string) error {
	if err := i.SetString(string(text)); err != nil {
		return fmt.Errorf("%s.UnmarshalText: %w (must be one of %s)", typeName, err, strings.Join(Strings(i.Values()), ", "))
	}
	return nil
}
