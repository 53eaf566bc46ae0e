// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "frame1.png")
	require.NoError(t, os.WriteFile(fn, []byte("x"), 0666))

	ok, err := FileExists(fn)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = FileExists(dir)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = FileExists(filepath.Join(dir, "missing.png"))
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestDirFS(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.wgsl"), []byte("fn a() {}"), 0666))
	fsys, fname, err := DirFS(filepath.Join(dir, "a.wgsl"))
	require.NoError(t, err)
	assert.Equal(t, "a.wgsl", fname)
	b, err := fs.ReadFile(fsys, fname)
	require.NoError(t, err)
	assert.Equal(t, "fn a() {}", string(b))
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden(".DS_Store"))
	assert.False(t, IsHidden("frame1.png"))
	assert.False(t, IsHidden(""))
}
