/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides design token types.
package token

import (
	"maps"
	"slices"
	"strings"
)

// Token represents a single design token read from a source file.
// Both Style Dictionary ("value") and DTCG ("$value") spellings map onto it.
type Token struct {
	// Name is the token's output name. The parser sets a dash-joined default;
	// platform name transforms overwrite it on per-platform clones.
	Name string `json:"name"`

	// Value is the string form of the source value, used for reference detection.
	Value string `json:"value"`

	// Type specifies the type of token (color, dimension, etc.).
	Type string `json:"type,omitempty"`

	// Description is optional documentation for the token.
	Description string `json:"description,omitempty"`

	// Extensions allows for custom metadata.
	Extensions map[string]any `json:"$extensions,omitempty"`

	// Deprecated indicates if this token should no longer be used.
	Deprecated bool `json:"deprecated,omitempty"`

	// DeprecationMessage provides context for deprecated tokens.
	DeprecationMessage string `json:"deprecationMessage,omitempty"`

	// FilePath is the file this token was loaded from.
	FilePath string `json:"-"`

	// Path is the JSON path to this token (e.g., ["color", "primary"]).
	Path []string `json:"-"`

	// RawValue is the original value before resolution.
	RawValue any `json:"-"`

	// ResolvedValue is the value after alias resolution and value transforms.
	ResolvedValue any `json:"-"`

	// IsResolved indicates if alias resolution has been performed.
	IsResolved bool `json:"-"`
}

// DotPath returns the dot-separated path to this token.
func (t *Token) DotPath() string {
	return strings.Join(t.Path, ".")
}

// Category returns the first path segment, the "C" of a
// category/type/item naming scheme.
func (t *Token) Category() string {
	if len(t.Path) == 0 {
		return ""
	}
	return t.Path[0]
}

// Clone returns a copy of the token that can be transformed without
// affecting the original. Path and Extensions are copied; values are shared.
func (t *Token) Clone() *Token {
	c := *t
	c.Path = slices.Clone(t.Path)
	if t.Extensions != nil {
		c.Extensions = maps.Clone(t.Extensions)
	}
	return &c
}

// CloneAll clones every token in the list.
func CloneAll(tokens []*Token) []*Token {
	out := make([]*Token, len(tokens))
	for i, t := range tokens {
		out[i] = t.Clone()
	}
	return out
}
