/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"regexp"
	"strings"
)

// curlyBracePattern matches {token.path} references.
var curlyBracePattern = regexp.MustCompile(`\{([^{}]+)\}`)

// legacyValueSuffixes are accepted at the end of a reference path, e.g.
// {color.primary.value}, for sources written against older tooling.
var legacyValueSuffixes = []string{".value", ".$value"}

// ParseCurlyBraceRef extracts the token path from a value that is exactly
// one curly brace reference. Returns the path and true if valid.
func ParseCurlyBraceRef(value string) (string, bool) {
	matches := curlyBracePattern.FindStringSubmatch(value)
	if len(matches) != 2 || matches[0] != value {
		return "", false
	}
	return matches[1], true
}

// IsCurlyBraceRef returns true if the value contains a curly brace reference.
func IsCurlyBraceRef(value string) bool {
	return curlyBracePattern.MatchString(value)
}

// ExtractAllRefs extracts all curly brace references from a string.
func ExtractAllRefs(value string) []string {
	matches := curlyBracePattern.FindAllStringSubmatch(value, -1)
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		if len(m) >= 2 {
			refs = append(refs, m[1])
		}
	}
	return refs
}

// ReplaceRefs calls fn for every reference in value and substitutes its result.
func ReplaceRefs(value string, fn func(ref string) string) string {
	return curlyBracePattern.ReplaceAllStringFunc(value, func(m string) string {
		return fn(m[1 : len(m)-1])
	})
}

// TrimValueSuffix strips a legacy ".value" suffix from a reference path.
func TrimValueSuffix(ref string) (string, bool) {
	for _, suffix := range legacyValueSuffixes {
		if trimmed, ok := strings.CutSuffix(ref, suffix); ok {
			return trimmed, true
		}
	}
	return ref, false
}
