/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package source enumerates and decodes the files of a token source tree.
package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	tkfs "bennypowers.dev/tokenkit/fs"
	"bennypowers.dev/tokenkit/token"
)

// Extension is the file extension of token source files.
const Extension = ".json"

// JSONFiles returns every regular .json file below root.
// fs.WalkDir visits entries in lexical order, so the result is stable
// across platforms. Symlinks are not followed.
func JSONFiles(filesystem tkfs.FileSystem, root string) ([]string, error) {
	var files []string

	err := fs.WalkDir(filesystem, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if d.Type().IsRegular() && strings.HasSuffix(d.Name(), Extension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	return files, nil
}

// Key returns the source-map key for path: its location relative to root,
// without the .json extension, using forward slashes.
func Key(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}
	rel = strings.TrimSuffix(rel, Extension)
	rel = filepath.ToSlash(rel)
	return strings.ReplaceAll(rel, `\`, "/"), nil
}

// Decode parses token file content as strict JSON: comments and trailing
// commas are errors. Numbers are kept as json.Number so they re-encode
// verbatim.
func Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}
	return v, nil
}

// ReadFile reads and decodes a single token file. Parse failures are
// reported as token.ErrMalformedTokenFile naming the path.
func ReadFile(filesystem tkfs.FileSystem, path string) (any, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	v, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", token.ErrMalformedTokenFile, path, err)
	}
	return v, nil
}
