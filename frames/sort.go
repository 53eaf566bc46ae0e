// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frames

import (
	"slices"
	"strings"

	"github.com/maruel/natural"
)

// Less reports whether file name a sorts before b in natural order,
// comparing runs of digits by numeric value, so that "frame2"
// sorts before "frame10".
func Less(a, b string) bool {
	return natural.Less(a, b)
}

// SortNatural sorts the given file names in natural order.
func SortNatural(names []string) {
	slices.SortStableFunc(names, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		}
		return strings.Compare(a, b)
	})
}
