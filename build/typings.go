/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package build

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"bennypowers.dev/tokenkit/fs"
	"bennypowers.dev/tokenkit/token"
)

const typingsHeader = "// Auto-generated. Do not edit.\n"

// literalEscaper makes a name safe inside a single-quoted TS string.
// Line terminators, U+2028 and U+2029 included, end a string literal.
var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\u2028", `\u2028`,
	"\u2029", `\u2029`,
)

// Typings renders a TypeScript declaration for the given token names:
// a string-literal union TokenName and a tokens record typed over it.
// Names are sorted; the input slice is not modified.
func Typings(names []string) []byte {
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	var b strings.Builder
	b.WriteString(typingsHeader)
	b.WriteString("\n")

	if len(sorted) == 0 {
		b.WriteString("export type TokenName = never;\n")
	} else {
		b.WriteString("export type TokenName =")
		for i, name := range sorted {
			fmt.Fprintf(&b, "\n  | '%s'", literalEscaper.Replace(name))
			if i == len(sorted)-1 {
				b.WriteString(";\n")
			}
		}
	}

	b.WriteString("\nexport declare const tokens: Record<TokenName, string | number>;\n")
	return []byte(b.String())
}

// ReadNames reads a flat JSON token file and returns its keys, sorted.
// The file must hold a single JSON object.
func ReadNames(filesystem fs.FileSystem, path string) ([]string, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", token.ErrTypingsGenerationFailed, err)
	}

	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", token.ErrTypingsGenerationFailed, path, err)
	}
	if flat == nil {
		return nil, fmt.Errorf("%w: %s is not a JSON object", token.ErrTypingsGenerationFailed, path)
	}

	return slices.Sorted(maps.Keys(flat)), nil
}
