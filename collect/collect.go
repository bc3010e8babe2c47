/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package collect merges a token source tree into a single source map.
package collect

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"slices"

	"bennypowers.dev/tokenkit/fs"
	"bennypowers.dev/tokenkit/internal/logger"
	"bennypowers.dev/tokenkit/source"
)

// SourceMap maps a file key (relative path without extension) to the
// parsed content of that file.
type SourceMap map[string]any

// Collect reads every JSON file below root and returns them keyed by
// relative path. Any malformed file aborts the whole collection.
func Collect(filesystem fs.FileSystem, root string) (SourceMap, error) {
	files, err := source.JSONFiles(filesystem, root)
	if err != nil {
		return nil, err
	}

	merged := make(SourceMap, len(files))
	for _, file := range files {
		entry, err := collectFile(filesystem, root, file)
		if err != nil {
			return nil, err
		}
		for key, content := range entry {
			merged[key] = content
		}
	}

	logger.Debug("collected %d token files from %s", len(merged), root)
	return merged, nil
}

// collectFile returns a single-entry map for one file.
func collectFile(filesystem fs.FileSystem, root, path string) (SourceMap, error) {
	key, err := source.Key(root, path)
	if err != nil {
		return nil, fmt.Errorf("failed to compute key for %s: %w", path, err)
	}

	content, err := source.ReadFile(filesystem, path)
	if err != nil {
		return nil, err
	}

	return SourceMap{key: content}, nil
}

// Keys returns the keys of the source map in sorted order.
func (m SourceMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Marshal encodes the source map with two-space indentation and a trailing newline.
func (m SourceMap) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Write persists the source map to path, creating parent directories.
func Write(filesystem fs.FileSystem, path string, m SourceMap) error {
	data, err := m.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode source map: %w", err)
	}
	if err := filesystem.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := filesystem.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
