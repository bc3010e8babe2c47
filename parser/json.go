/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokenkit/fs"
	"bennypowers.dev/tokenkit/token"
)

// Descriptor keys. Both the Style Dictionary spelling and the DTCG
// "$"-prefixed spelling are accepted; the DTCG one wins when both exist.
var (
	valueKeys       = []string{"$value", "value"}
	typeKeys        = []string{"$type", "type"}
	descriptionKeys = []string{"$description", "description", "comment"}
	deprecatedKeys  = []string{"$deprecated", "deprecated"}
)

// JSONParser parses JSON (and YAML) design token files.
type JSONParser struct{}

// NewJSONParser creates a new JSON token parser.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse parses JSON or YAML token data and returns tokens.
func (p *JSONParser) Parse(data []byte, opts Options) ([]*token.Token, error) {
	var raw map[string]any

	// Detect format: JSON typically starts with '{' or whitespace then '{'
	// YAML uses indentation-based structure
	if isLikelyJSON(data) {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	} else {
		var yamlRaw any
		if err := yaml.Unmarshal(data, &yamlRaw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		// Normalize map types (YAML numeric keys create map[any]any)
		normalized := normalizeMap(yamlRaw)
		var ok bool
		raw, ok = normalized.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("YAML root must be an object")
		}
	}

	result := []*token.Token{}
	p.extractTokens(raw, nil, "", opts, &result)
	return result, nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON typically starts with '{' (optionally preceded by whitespace/BOM).
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// normalizeMap recursively converts map[interface{}]interface{} to map[string]any.
// YAML with numeric keys (like "10:") creates map[interface{}]interface{},
// which must be normalized for our string-keyed processing.
func normalizeMap(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalizeMap(val)
		}
		return x
	case map[any]any:
		result := make(map[string]any, len(x))
		for k, val := range x {
			result[fmt.Sprintf("%v", k)] = normalizeMap(val)
		}
		return result
	case []any:
		for i, val := range x {
			x[i] = normalizeMap(val)
		}
		return x
	default:
		return v
	}
}

// lookup returns the first present key of keys in m.
func lookup(m map[string]any, keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// extractTokens recursively extracts tokens from a parsed map.
// inheritedType is passed down from parent groups for type inheritance.
func (p *JSONParser) extractTokens(data map[string]any, path []string, inheritedType string, opts Options, result *[]*token.Token) {
	currentType := inheritedType
	if groupType, ok := lookup(data, typeKeys); ok {
		if s, ok := groupType.(string); ok {
			currentType = s
		}
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		if strings.HasPrefix(k, "$") {
			continue
		}
		keys = append(keys, k)
	}

	// Sort for deterministic order unless SkipSort is set
	if !opts.SkipSort {
		sort.Strings(keys)
	}

	for _, key := range keys {
		// Skip non-map values (group-level metadata such as "type": "color")
		valueMap, ok := data[key].(map[string]any)
		if !ok {
			continue
		}

		currentPath := slices.Clip(append(path, key))

		if rawValue, isToken := lookup(valueMap, valueKeys); isToken {
			*result = append(*result, p.createToken(valueMap, currentPath, rawValue, currentType))
			continue
		}

		p.extractTokens(valueMap, currentPath, currentType, opts, result)
	}
}

// createToken creates a Token from a descriptor map.
func (p *JSONParser) createToken(valueMap map[string]any, path []string, rawValue any, inheritedType string) *token.Token {
	t := &token.Token{
		Name:     strings.Join(path, "-"),
		Path:     path,
		RawValue: rawValue,
	}
	if s, ok := rawValue.(string); ok {
		t.Value = s
	}

	// The token's own type takes precedence over the inherited one
	if typ, ok := lookup(valueMap, typeKeys); ok {
		if s, ok := typ.(string); ok {
			t.Type = s
		}
	}
	if t.Type == "" {
		t.Type = inheritedType
	}

	if desc, ok := lookup(valueMap, descriptionKeys); ok {
		if s, ok := desc.(string); ok {
			t.Description = s
		}
	}

	if deprecated, ok := lookup(valueMap, deprecatedKeys); ok {
		switch d := deprecated.(type) {
		case bool:
			t.Deprecated = d
		case string:
			t.Deprecated = true
			t.DeprecationMessage = d
		}
	}

	if extensions, ok := valueMap["$extensions"].(map[string]any); ok {
		t.Extensions = extensions
	}

	return t
}

// ParseFile parses a token file and returns tokens.
func (p *JSONParser) ParseFile(filesystem fs.FileSystem, path string, opts Options) ([]*token.Token, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	tokens, err := p.Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", token.ErrMalformedTokenFile, path, err)
	}

	for _, t := range tokens {
		t.FilePath = path
	}

	return tokens, nil
}
