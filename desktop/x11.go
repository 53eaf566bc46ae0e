// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux && !android && !wayland

package desktop

// X11Window returns the X11 window id, for placing the window.
func (w *Window) X11Window() uint32 {
	if w.glw == nil {
		return 0
	}
	return uint32(w.glw.GetX11Window())
}
