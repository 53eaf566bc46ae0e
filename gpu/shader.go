// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"cogentcore.org/animwall/base/errors"
	"cogentcore.org/animwall/base/fsx"
	"github.com/cogentcore/webgpu/wgpu"
)

// ShaderLanguages are the supported shader source languages.
type ShaderLanguages int32 //enums:enum

const (
	// WGSL is the WebGPU shading language.
	WGSL ShaderLanguages = iota

	// GLSL is the OpenGL shading language, supported for
	// fragment shaders only.
	GLSL
)

// LanguageFromExt returns the shader language for the given
// file name extension.
func LanguageFromExt(fname string) (ShaderLanguages, error) {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".wgsl":
		return WGSL, nil
	case ".glsl", ".frag", ".frg", ".fs":
		return GLSL, nil
	}
	return WGSL, fmt.Errorf("gpu.Shader: %q has no recognized shader extension (.wgsl, .glsl, .frag, .frg)", fname)
}

// Shader manages a single Shader program, which can have multiple
// entry points.
type Shader struct {

	// Name of the shader, for debugging.
	Name string

	// Language of the source code.
	Language ShaderLanguages

	module *wgpu.ShaderModule

	device *Device
}

// NewShader returns a new Shader on the given device.
func NewShader(name string, dev *Device) *Shader {
	return &Shader{Name: name, device: dev}
}

// OpenFile loads and compiles the given shader file. The language is
// determined by the file extension. WGSL #include "file" statements
// are resolved in the includes file system if it is non-nil, and
// otherwise relative to the file.
func (sh *Shader) OpenFile(fname string, includes fs.FS) error {
	lang, err := LanguageFromExt(fname)
	if err != nil {
		return err
	}
	dir, base, err := fsx.DirFS(fname)
	if err != nil {
		return fmt.Errorf("gpu.Shader: %w", err)
	}
	b, err := fs.ReadFile(dir, base)
	if err != nil {
		return fmt.Errorf("gpu.Shader: %w", err)
	}
	if includes == nil {
		includes = dir
	}
	return sh.OpenCode(string(b), lang, includes)
}

// OpenFS loads and compiles the given WGSL shader file from
// the given file system, resolving includes within it.
func (sh *Shader) OpenFS(fsys fs.FS, fname string) error {
	b, err := fs.ReadFile(fsys, fname)
	if errors.Log(err) != nil {
		return err
	}
	return sh.OpenCode(string(b), WGSL, fsys)
}

// OpenCode compiles the given shader source code. GLSL code is
// compiled as a fragment stage.
func (sh *Shader) OpenCode(code string, lang ShaderLanguages, includes fs.FS) error {
	sh.Release()
	sh.Language = lang
	desc := &wgpu.ShaderModuleDescriptor{Label: sh.Name}
	switch lang {
	case WGSL:
		if includes != nil {
			code = IncludeFS(includes, "", code)
		}
		desc.WGSLDescriptor = &wgpu.ShaderModuleWGSLDescriptor{Code: code}
	case GLSL:
		desc.GLSLDescriptor = &wgpu.ShaderModuleGLSLDescriptor{
			Code:        code,
			ShaderStage: wgpu.ShaderStageFragment,
		}
	}
	module, err := sh.device.Device.CreateShaderModule(desc)
	if err != nil {
		return fmt.Errorf("gpu.Shader %q: compiling %v: %w", sh.Name, lang, err)
	}
	sh.module = module
	return nil
}

// EntryPoint returns the name of the fragment entry point: GLSL
// shaders always use main, and WGSL shaders use the given name.
func (sh *Shader) EntryPoint(wgsl string) string {
	if sh.Language == GLSL {
		return "main"
	}
	return wgsl
}

// Release frees the shader module.
func (sh *Shader) Release() {
	if sh.module == nil {
		return
	}
	sh.module.Release()
	sh.module = nil
}
