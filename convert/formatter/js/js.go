/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package js formats tokens as a JavaScript module with one exported
// constant per token.
package js

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"bennypowers.dev/tokenkit/convert/formatter"
	"bennypowers.dev/tokenkit/token"
)

// Module specifies the JavaScript module system.
type Module string

const (
	// ModuleESM uses ES Modules (default).
	ModuleESM Module = "esm"
	// ModuleCJS uses CommonJS.
	ModuleCJS Module = "cjs"
)

// Formatter outputs JavaScript constants.
type Formatter struct {
	module Module
}

// New creates a new JS formatter emitting ES modules.
func New() *Formatter {
	return NewWithModule(ModuleESM)
}

// NewWithModule creates a new JS formatter for the given module system.
func NewWithModule(module Module) *Formatter {
	if module == "" {
		module = ModuleESM
	}
	return &Formatter{module: module}
}

// Format converts tokens to JavaScript. Token names must be valid
// identifiers, so platforms using this format need a camel or pascal name
// transform.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	header := opts.Header
	if header == "" {
		header = formatter.DefaultHeader
	}

	var b strings.Builder
	b.WriteString(formatter.FormatHeader(header, formatter.CStyleComments))

	for _, tok := range formatter.SortTokens(tokens) {
		if !isIdentifier(tok.Name) {
			return nil, fmt.Errorf("token %s: %q is not a JavaScript identifier", tok.DotPath(), tok.Name)
		}

		value, err := json.Marshal(formatter.ResolvedValue(tok))
		if err != nil {
			return nil, fmt.Errorf("token %s: %w", tok.DotPath(), err)
		}

		b.WriteString(docComment(tok))
		switch f.module {
		case ModuleCJS:
			fmt.Fprintf(&b, "exports.%s = %s;\n", tok.Name, value)
		default:
			fmt.Fprintf(&b, "export const %s = %s;\n", tok.Name, value)
		}
	}

	return []byte(b.String()), nil
}

// docComment renders a one-line JSDoc comment from the description and
// deprecation, or nothing.
func docComment(tok *token.Token) string {
	var parts []string
	if tok.Description != "" {
		parts = append(parts, tok.Description)
	}
	if tok.Deprecated {
		tag := "@deprecated"
		if tok.DeprecationMessage != "" {
			tag += " " + tok.DeprecationMessage
		}
		parts = append(parts, tag)
	}
	if len(parts) == 0 {
		return ""
	}
	text := strings.ReplaceAll(strings.Join(parts, " "), "*/", "* /")
	return "/** " + text + " */\n"
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
