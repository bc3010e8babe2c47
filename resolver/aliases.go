/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"bennypowers.dev/tokenkit/token"
)

// ResolveAliases resolves all alias references in the token list.
// Updates ResolvedValue and IsResolved fields on each token.
//
// A value that is exactly one reference takes the referenced token's
// resolved value, keeping its type. References embedded in a longer
// string are interpolated. Every reference that names no token is
// reported in a single ErrUnresolvedReference.
func ResolveAliases(tokens []*token.Token) error {
	graph := BuildDependencyGraph(tokens)

	if missing := graph.Missing(); len(missing) > 0 {
		return fmt.Errorf("%w: %s", token.ErrUnresolvedReference, strings.Join(missing, ", "))
	}

	sortedPaths, err := graph.TopologicalSort()
	if err != nil {
		return err
	}

	tokenByPath := make(map[string]*token.Token, len(tokens))
	for _, tok := range tokens {
		tokenByPath[tok.DotPath()] = tok
	}

	for _, path := range sortedPaths {
		if tok := tokenByPath[path]; tok != nil {
			resolveToken(tok, tokenByPath)
		}
	}

	return nil
}

func resolveToken(tok *token.Token, tokenByPath map[string]*token.Token) {
	if tok.IsResolved {
		return
	}
	defer func() { tok.IsResolved = true }()

	if !token.IsCurlyBraceRef(tok.Value) {
		if tok.RawValue != nil {
			tok.ResolvedValue = tok.RawValue
		} else {
			tok.ResolvedValue = tok.Value
		}
		return
	}

	if ref, ok := token.ParseCurlyBraceRef(tok.Value); ok {
		ref, _ = token.TrimValueSuffix(ref)
		target := tokenByPath[ref]
		tok.ResolvedValue = target.ResolvedValue
		if tok.Type == "" {
			tok.Type = target.Type
		}
		return
	}

	tok.ResolvedValue = token.ReplaceRefs(tok.Value, func(ref string) string {
		ref, _ = token.TrimValueSuffix(ref)
		return Stringify(tokenByPath[ref].ResolvedValue)
	})
}

// Stringify renders a resolved value for interpolation into a string.
func Stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case nil:
		return ""
	default:
		if data, err := json.Marshal(x); err == nil {
			return string(data)
		}
		return fmt.Sprint(x)
	}
}
