/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package source

import (
	"errors"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	tkfs "bennypowers.dev/tokenkit/fs"
)

// Glob expands include patterns relative to root and returns the matching
// files, sorted and deduplicated. A pattern whose base directory does not
// exist matches nothing.
func Glob(filesystem tkfs.FileSystem, root string, patterns []string) ([]string, error) {
	var result []string

	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return nil, &InvalidPatternError{Pattern: pattern}
		}
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(root, pattern)
		}

		if !containsGlob(pattern) {
			if filesystem.Exists(pattern) {
				result = append(result, pattern)
			}
			continue
		}

		matches, err := expandGlob(filesystem, pattern)
		if err != nil {
			return nil, err
		}
		result = append(result, matches...)
	}

	slices.Sort(result)
	return slices.Compact(result), nil
}

// InvalidPatternError reports a malformed include pattern.
type InvalidPatternError struct {
	Pattern string
}

func (e *InvalidPatternError) Error() string {
	return "invalid include pattern: " + e.Pattern
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob expands a glob pattern against the filesystem.
func expandGlob(filesystem tkfs.FileSystem, pattern string) ([]string, error) {
	// Find the base directory (non-glob prefix)
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}
	if !filesystem.Exists(baseDir) {
		return nil, nil
	}

	// Get the relative pattern from baseDir
	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = filepath.ToSlash(strings.TrimPrefix(relPattern, string(filepath.Separator)))

	var matches []string

	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}

		// Get path relative to baseDir for matching
		relPath := strings.TrimPrefix(path, baseDir)
		relPath = filepath.ToSlash(strings.TrimPrefix(relPath, string(filepath.Separator)))

		// doublestar handles both simple and ** globs
		if matched, _ := doublestar.Match(relPattern, relPath); matched {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}
