/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"bennypowers.dev/tokenkit/fs"
	"bennypowers.dev/tokenkit/source"
	"bennypowers.dev/tokenkit/token"
)

// logoProperty is the top-level key of the logo file holding variant paths.
const logoProperty = "logo"

// checkLogo verifies that every string entry of the logo file's "logo"
// object names an existing file below sourceDir. A missing or malformed
// logo file is not a logo problem; the tree walk reports malformed files.
func checkLogo(filesystem fs.FileSystem, sourceDir, logoFile string) []ValidationError {
	logoPath := filepath.Join(sourceDir, filepath.FromSlash(logoFile))
	if !filesystem.Exists(logoPath) {
		return nil
	}

	doc, err := source.ReadFile(filesystem, logoPath)
	if err != nil {
		return nil
	}
	root, ok := doc.(map[string]any)
	if !ok {
		return nil
	}
	entries, ok := root[logoProperty].(map[string]any)
	if !ok {
		return nil
	}

	var problems []ValidationError
	for _, variant := range slices.Sorted(maps.Keys(entries)) {
		raw, ok := entries[variant].(string)
		if !ok {
			continue
		}
		if assetExists(filesystem, sourceDir, raw) {
			continue
		}
		problems = append(problems, ValidationError{
			Kind:       token.ErrMissingLogoAsset,
			FilePath:   logoPath,
			Path:       logoProperty + "." + variant,
			Message:    fmt.Sprintf("missing logo asset for %s.%s: %s", logoProperty, variant, raw),
			Suggestion: "add the file under the token source directory or fix the path",
		})
	}
	return problems
}

// assetExists resolves an asset reference against sourceDir. One leading
// slash is dropped; an "assets/" prefix is kept as written. References that
// are empty or resolve outside sourceDir never exist.
func assetExists(filesystem fs.FileSystem, sourceDir, ref string) bool {
	rel := strings.TrimPrefix(ref, "/")
	if rel == "" {
		return false
	}

	assetPath := filepath.Join(sourceDir, filepath.FromSlash(rel))
	within, err := filepath.Rel(sourceDir, assetPath)
	if err != nil || within == "." || within == ".." || strings.HasPrefix(within, ".."+string(filepath.Separator)) {
		return false
	}
	return filesystem.Exists(assetPath)
}
