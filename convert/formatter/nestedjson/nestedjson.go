/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package nestedjson formats tokens as a JSON tree of values keyed by path.
package nestedjson

import (
	"encoding/json"
	"fmt"

	"bennypowers.dev/tokenkit/convert/formatter"
	"bennypowers.dev/tokenkit/token"
)

// Formatter outputs nested JSON.
type Formatter struct{}

// New creates a new nested JSON formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format builds {"color": {"brand": {"primary": "#ff0000"}}} from token
// paths. A token whose path is a prefix of another token's path is an error.
func (f *Formatter) Format(tokens []*token.Token, _ formatter.Options) ([]byte, error) {
	result := make(map[string]any)

	for _, tok := range tokens {
		if len(tok.Path) == 0 {
			continue
		}
		current := result

		// Navigate/create nested structure up to parent
		for _, segment := range tok.Path[:len(tok.Path)-1] {
			next, exists := current[segment]
			if !exists {
				child := make(map[string]any)
				current[segment] = child
				current = child
				continue
			}
			child, ok := next.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("token %s is nested under token %s", tok.DotPath(), segment)
			}
			current = child
		}

		leaf := tok.Path[len(tok.Path)-1]
		if _, isGroup := current[leaf].(map[string]any); isGroup {
			return nil, fmt.Errorf("token %s is also a group", tok.DotPath())
		}
		current[leaf] = formatter.ResolvedValue(tok)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
