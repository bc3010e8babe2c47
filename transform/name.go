/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tokenkit/convert/formatter"
	"bennypowers.dev/tokenkit/token"
)

// words returns the prefix and path of a token split into words.
func words(tok *token.Token, prefix string) []string {
	parts := make([]string, 0, len(tok.Path)+1)
	if prefix != "" {
		parts = append(parts, prefix)
	}
	parts = append(parts, tok.Path...)
	return formatter.SplitIntoWords(strings.Join(parts, " "))
}

// Kebab names a token color-brand-primary.
func Kebab(tok *token.Token, prefix string) string {
	return strings.ToLower(strings.Join(words(tok, prefix), "-"))
}

// Camel names a token colorBrandPrimary.
func Camel(tok *token.Token, prefix string) string {
	return formatter.ToCamelCase(strings.Join(words(tok, prefix), "-"))
}

// Pascal names a token ColorBrandPrimary.
func Pascal(tok *token.Token, prefix string) string {
	caser := cases.Title(language.Und)
	var b strings.Builder
	for _, w := range words(tok, prefix) {
		b.WriteString(caser.String(w))
	}
	return b.String()
}

// Dot names a token color.brand.primary, keeping path segments verbatim.
func Dot(tok *token.Token, prefix string) string {
	if prefix == "" {
		return tok.DotPath()
	}
	return prefix + "." + tok.DotPath()
}
