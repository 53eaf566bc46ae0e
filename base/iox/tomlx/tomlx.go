// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx provides functions for reading and writing TOML files.
package tomlx

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"cogentcore.org/animwall/base/errors"
	"github.com/pelletier/go-toml/v2"
)

// Open reads the given object from the given filename using TOML encoding.
// Fields that are not in the file keep their current values, and
// keys that do not match a field are an error.
func Open(v any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Read(v, bufio.NewReader(f)); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return nil
}

// Read reads the given object from the given reader using TOML encoding.
func Read(v any, reader io.Reader) error {
	dec := toml.NewDecoder(reader)
	dec.DisallowUnknownFields()
	err := dec.Decode(v)
	var serr *toml.StrictMissingError
	if errors.As(err, &serr) {
		return fmt.Errorf("%w\n%s", err, serr.String())
	}
	return err
}

// Save writes the given object to the given filename using TOML encoding.
func Save(v any, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	if err := Write(v, bw); err != nil {
		return err
	}
	return bw.Flush()
}

// Write writes the given object using TOML encoding.
func Write(v any, writer io.Writer) error {
	return toml.NewEncoder(writer).Encode(v)
}
