/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package flatjson provides flat key-value JSON formatting for design tokens.
package flatjson

import (
	"encoding/json"

	"bennypowers.dev/tokenkit/convert/formatter"
	"bennypowers.dev/tokenkit/internal/logger"
	"bennypowers.dev/tokenkit/token"
)

// Formatter outputs flat key-value JSON.
type Formatter struct{}

// New creates a new flat JSON formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts tokens to a JSON object mapping each token name to its
// value. Keys are sorted; when two tokens share a name the later one wins
// and the collision is logged.
func (f *Formatter) Format(tokens []*token.Token, _ formatter.Options) ([]byte, error) {
	result := make(map[string]any, len(tokens))
	owners := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		path := tok.DotPath()
		if prev, exists := owners[tok.Name]; exists && prev != path {
			logger.Warn("token name collision: %s produced by %s and %s, using the latter", tok.Name, prev, path)
		}
		owners[tok.Name] = path
		result[tok.Name] = formatter.ResolvedValue(tok)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
