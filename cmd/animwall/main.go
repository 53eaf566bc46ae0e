// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command animwall plays an animation as the desktop background
// of every connected monitor.
package main

import (
	"fmt"
	"os"
	"runtime"
)

func init() {
	// glfw must be used from the main thread
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
